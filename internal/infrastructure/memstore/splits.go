package memstore

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

type SplitStore struct {
	live []*domain.SplitRequest
}

func NewSplitStore() *SplitStore {
	return &SplitStore{}
}

func (s *SplitStore) Add(split *domain.SplitRequest) error {
	s.live = append(s.live, split)
	return nil
}

func (s *SplitStore) Remove(splitID uint64) error {
	for i, sp := range s.live {
		if sp.ID == splitID {
			s.live = append(s.live[:i], s.live[i+1:]...)
			return nil
		}
	}
	return domain.ErrParticipantNotFound
}

// Live returns requests in creation order.
func (s *SplitStore) Live() []*domain.SplitRequest {
	return s.live
}
