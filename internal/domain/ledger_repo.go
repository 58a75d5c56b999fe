package domain

// LedgerRepository is the append-only transaction log. Reporting
// commands recompute aggregates by rescanning All in append order, so
// the repository never reorders entries.
type LedgerRepository interface {
	Append(tx *Transaction) error
	All() []*Transaction
	ByEmail(email string) []*Transaction
	BySplitID(splitID uint64) []*Transaction
}
