package cashback

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/rates"
	"github.com/LavaJover/shvark-banking-sim/internal/usecase/cashback/strategies"
)

type Engine interface {
	Apply(account *domain.Account, merchant *domain.Merchant, amount float64, currency string) (float64, error)
}

// DefaultEngine dispatches on the merchant's cashback policy. The
// strategy set is closed; an unknown policy is a hard command failure,
// not a silent zero.
type DefaultEngine struct {
	strategies map[domain.CashbackPolicy]strategies.Strategy
}

func NewDefaultEngine(graph *rates.Graph, userRepo domain.UserRepository) *DefaultEngine {
	return &DefaultEngine{
		strategies: map[domain.CashbackPolicy]strategies.Strategy{
			domain.PolicyTransactionCount:  strategies.NewTransactionCountStrategy(),
			domain.PolicySpendingThreshold: strategies.NewSpendingThresholdStrategy(graph, userRepo),
		},
	}
}

func (e *DefaultEngine) Apply(account *domain.Account, merchant *domain.Merchant, amount float64, currency string) (float64, error) {
	strategy, ok := e.strategies[merchant.Policy]
	if !ok {
		return 0, domain.ErrUnsupportedCashbackPolicy
	}
	return strategy.Calculate(account, merchant, amount, currency)
}
