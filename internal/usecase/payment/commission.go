package payment

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

const (
	standardCommissionRate = 0.2 / 100
	silverCommissionRate   = 0.1 / 100

	// Silver pays commission only on payments worth at least this much
	// in RON; student and gold pay none at all.
	silverCommissionThresholdRon = 500.0

	// Silver payments of at least this much in RON count toward the
	// automatic gold upgrade.
	goldEligibleThresholdRon = 300.0
)

// commissionFor prices one debit for the owner's plan. The amount is in
// the account currency; the threshold comparison goes through the rate
// graph.
func (uc *DefaultPaymentUsecase) commissionFor(plan domain.Plan, amount float64, currency string) (float64, error) {
	switch plan {
	case domain.PlanStandard:
		return standardCommissionRate * amount, nil
	case domain.PlanSilver:
		amountRon, err := uc.graph.Convert(amount, currency, "RON")
		if err != nil {
			return 0, err
		}
		if amountRon >= silverCommissionThresholdRon {
			return silverCommissionRate * amount, nil
		}
	}
	return 0, nil
}

// trackGoldEligibility counts big silver payments toward the automatic
// silver -> gold upgrade.
func (uc *DefaultPaymentUsecase) trackGoldEligibility(user *domain.User, amount float64, currency string) {
	if user.Plan != domain.PlanSilver {
		return
	}
	amountRon, err := uc.graph.Convert(amount, currency, "RON")
	if err != nil {
		return
	}
	if amountRon >= goldEligibleThresholdRon {
		user.EligibleGoldPayments++
	}
}
