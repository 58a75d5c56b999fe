package memstore

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

type AccountStore struct {
	accounts []*domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{}
}

func (s *AccountStore) AddAccount(account *domain.Account) error {
	s.accounts = append(s.accounts, account)
	return nil
}

func (s *AccountStore) GetAccountByIBAN(iban string) (*domain.Account, error) {
	for _, a := range s.accounts {
		if a.IBAN == iban {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (s *AccountStore) GetAccountsByOwner(email string) []*domain.Account {
	var owned []*domain.Account
	for _, a := range s.accounts {
		if a.OwnerEmail == email {
			owned = append(owned, a)
		}
	}
	return owned
}

func (s *AccountStore) DeleteAccount(iban string) error {
	for i, a := range s.accounts {
		if a.IBAN == iban {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

func (s *AccountStore) AllAccounts() []*domain.Account {
	return s.accounts
}
