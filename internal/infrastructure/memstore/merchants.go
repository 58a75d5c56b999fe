package memstore

import (
	"strings"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

type MerchantStore struct {
	merchants []*domain.Merchant
}

func NewMerchantStore() *MerchantStore {
	return &MerchantStore{}
}

func (s *MerchantStore) AddMerchant(merchant *domain.Merchant) error {
	s.merchants = append(s.merchants, merchant)
	return nil
}

func (s *MerchantStore) GetMerchantByName(name string) (*domain.Merchant, error) {
	for _, m := range s.merchants {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return nil, domain.ErrMerchantNotFound
}

func (s *MerchantStore) GetMerchantByID(id int) (*domain.Merchant, error) {
	for _, m := range s.merchants {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrMerchantNotFound
}

func (s *MerchantStore) AllMerchants() []*domain.Merchant {
	return s.merchants
}
