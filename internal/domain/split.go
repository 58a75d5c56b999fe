package domain

type SplitMode string

const (
	SplitEqual  SplitMode = "equal"
	SplitCustom SplitMode = "custom"
)

type Vote int8

const (
	VoteUnset Vote = iota
	VoteAccepted
	VoteRejected
)

// SplitRequest tracks one multi-party payment from creation until every
// participant has voted. Participants, shares and votes are parallel
// slices; the participant list is frozen at creation.
type SplitRequest struct {
	ID           uint64
	Participants []*Account
	TotalAmount  float64
	Currency     string
	Timestamp    int
	Mode         SplitMode
	Shares       []float64
	Votes        []Vote
}

// IndexByOwner returns the slot of the first participant account owned
// by email, or -1. Duplicate owners resolve to the first slot.
func (s *SplitRequest) IndexByOwner(email string) int {
	for i, acc := range s.Participants {
		if acc.OwnerEmail == email {
			return i
		}
	}
	return -1
}

func (s *SplitRequest) HasVoted(i int) bool {
	return s.Votes[i] != VoteUnset
}

func (s *SplitRequest) AllAccepted() bool {
	for _, v := range s.Votes {
		if v != VoteAccepted {
			return false
		}
	}
	return true
}
