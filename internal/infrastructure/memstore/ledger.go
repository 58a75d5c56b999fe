package memstore

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

// Ledger is append-only: entries are never removed or reordered, and
// status flips mutate entries in place so history queries see them.
type Ledger struct {
	entries []*domain.Transaction
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(tx *domain.Transaction) error {
	l.entries = append(l.entries, tx)
	return nil
}

func (l *Ledger) All() []*domain.Transaction {
	return l.entries
}

func (l *Ledger) ByEmail(email string) []*domain.Transaction {
	var matched []*domain.Transaction
	for _, tx := range l.entries {
		if tx.Email == email {
			matched = append(matched, tx)
		}
	}
	return matched
}

func (l *Ledger) BySplitID(splitID uint64) []*domain.Transaction {
	var matched []*domain.Transaction
	for _, tx := range l.entries {
		if tx.SplitID == splitID {
			matched = append(matched, tx)
		}
	}
	return matched
}
