package domain

// SplitRepository holds the live split requests. A request enters on
// creation and leaves exactly once, on settlement or cancellation.
// Live returns requests in creation order; vote resolution walks that
// order looking for the oldest request still awaiting the voter.
type SplitRepository interface {
	Add(split *SplitRequest) error
	Remove(splitID uint64) error
	Live() []*SplitRequest
}
