package memstore

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

type CardStore struct {
	cards []*domain.Card
}

func NewCardStore() *CardStore {
	return &CardStore{}
}

func (s *CardStore) AddCard(card *domain.Card) error {
	s.cards = append(s.cards, card)
	return nil
}

func (s *CardStore) GetCardByNumber(number string) (*domain.Card, error) {
	for _, c := range s.cards {
		if c.Number == number {
			return c, nil
		}
	}
	return nil, domain.ErrCardNotFound
}

func (s *CardStore) GetCardsByIBAN(iban string) []*domain.Card {
	var linked []*domain.Card
	for _, c := range s.cards {
		if c.IBAN == iban {
			linked = append(linked, c)
		}
	}
	return linked
}

func (s *CardStore) DeleteCard(number string) error {
	for i, c := range s.cards {
		if c.Number == number {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return nil
		}
	}
	return domain.ErrCardNotFound
}
