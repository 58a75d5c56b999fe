package memstore

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

type AliasStore struct {
	aliases []*domain.Alias
}

func NewAliasStore() *AliasStore {
	return &AliasStore{}
}

func (s *AliasStore) AddAlias(alias *domain.Alias) error {
	s.aliases = append(s.aliases, alias)
	return nil
}

func (s *AliasStore) GetAliasByName(name string) (*domain.Alias, error) {
	for _, a := range s.aliases {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, domain.ErrAliasNotFound
}
