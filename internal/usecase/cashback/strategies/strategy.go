package strategies

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

// Strategy computes the cashback for one qualifying transaction. A
// strategy may mutate the account's historical counters and must do so
// exactly once per call, even when the computed cashback is zero. It
// never touches balances; crediting is the caller's job.
type Strategy interface {
	Name() string
	Calculate(account *domain.Account, merchant *domain.Merchant, amount float64, currency string) (float64, error)
}
