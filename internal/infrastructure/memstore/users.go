package memstore

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

// The stores in this package back one replay run and keep insertion
// order everywhere, because reports walk them in load order and the
// run must be reproducible. Nothing here outlives the process.

type UserStore struct {
	users []*domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) AddUser(user *domain.User) error {
	s.users = append(s.users, user)
	return nil
}

func (s *UserStore) GetUserByEmail(email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *UserStore) AllUsers() []*domain.User {
	return s.users
}
