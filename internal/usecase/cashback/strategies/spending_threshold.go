package strategies

import (
	"fmt"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/rates"
)

const (
	firstThreshold  = 100.0
	secondThreshold = 300.0
	thirdThreshold  = 500.0

	firstStandardPercent = 0.10
	firstSilverPercent   = 0.30
	firstGoldPercent     = 0.50

	secondStandardPercent = 0.20
	secondSilverPercent   = 0.40
	secondGoldPercent     = 0.60

	thirdStandardPercent = 0.25
	thirdSilverPercent   = 0.50
	thirdGoldPercent     = 0.70

	percentDivisor = 100.0
)

// SpendingThresholdStrategy accumulates RON-converted spend per
// merchant and keys the rate off the account-wide cumulative total.
// The highest threshold met wins, so once the total crosses into a
// tier the rate never drops back.
type SpendingThresholdStrategy struct {
	graph    *rates.Graph
	userRepo domain.UserRepository
}

func NewSpendingThresholdStrategy(graph *rates.Graph, userRepo domain.UserRepository) *SpendingThresholdStrategy {
	return &SpendingThresholdStrategy{graph: graph, userRepo: userRepo}
}

func (s *SpendingThresholdStrategy) Name() string {
	return "spendingThreshold"
}

func (s *SpendingThresholdStrategy) Calculate(account *domain.Account, merchant *domain.Merchant, amount float64, currency string) (float64, error) {
	if account.Cashback.SpendPerMerchantRon == nil {
		account.Cashback.SpendPerMerchantRon = make(map[string]float64)
	}

	converted, err := s.graph.Convert(amount, currency, "RON")
	if err != nil {
		return 0, fmt.Errorf("cashback spend conversion: %w", err)
	}
	account.Cashback.SpendPerMerchantRon[merchant.Name] += converted

	totalSpent := account.Cashback.CumulativeSpendRon()

	owner, err := s.userRepo.GetUserByEmail(account.OwnerEmail)
	if err != nil {
		return 0, err
	}

	var cashback float64
	switch {
	case totalSpent >= thirdThreshold:
		cashback = byPlan(owner.Plan, amount, thirdStandardPercent, thirdSilverPercent, thirdGoldPercent)
	case totalSpent >= secondThreshold:
		cashback = byPlan(owner.Plan, amount, secondStandardPercent, secondSilverPercent, secondGoldPercent)
	case totalSpent >= firstThreshold:
		cashback = byPlan(owner.Plan, amount, firstStandardPercent, firstSilverPercent, firstGoldPercent)
	}
	return cashback, nil
}

// byPlan applies the tier rate for the owner's plan to the current
// transaction amount, not the cumulative total.
func byPlan(plan domain.Plan, amount, standardPercent, silverPercent, goldPercent float64) float64 {
	switch plan {
	case domain.PlanStandard, domain.PlanStudent:
		return (standardPercent / percentDivisor) * amount
	case domain.PlanSilver:
		return (silverPercent / percentDivisor) * amount
	case domain.PlanGold:
		return (goldPercent / percentDivisor) * amount
	}
	return 0
}
