package payment

import (
	"github.com/google/uuid"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	paymentdto "github.com/LavaJover/shvark-banking-sim/internal/usecase/dto/payment"
)

const autoGoldEligiblePayments = 5

// Upgrade fees in RON, converted into the paying account's currency.
var upgradeFeesRon = map[[2]int]float64{
	{1, 2}: 100, // standard/student -> silver
	{2, 3}: 250, // silver -> gold
	{1, 3}: 350, // standard/student -> gold
}

// UpgradePlan moves the account owner to a higher plan for a fee.
// Same-plan and downgrade requests are quiet no-ops. Silver owners
// with enough large payments behind them are upgraded to gold free of
// charge.
func (uc *DefaultPaymentUsecase) UpgradePlan(input *paymentdto.UpgradePlanInput) error {
	account, err := uc.accountRepo.GetAccountByIBAN(input.IBAN)
	if err != nil {
		return err
	}
	user, err := uc.userRepo.GetUserByEmail(account.OwnerEmail)
	if err != nil {
		return err
	}

	newPlan := domain.Plan(input.NewPlan)
	if newPlan.Rank() == 0 {
		return domain.ErrInvalidPlanChange
	}
	if newPlan.Rank() <= user.Plan.Rank() {
		return nil
	}

	automatic := user.Plan == domain.PlanSilver &&
		newPlan == domain.PlanGold &&
		user.EligibleGoldPayments >= autoGoldEligiblePayments

	if !automatic {
		feeRon := upgradeFeesRon[[2]int{user.Plan.Rank(), newPlan.Rank()}]
		fee, err := uc.graph.Convert(feeRon, "RON", account.Currency)
		if err != nil {
			return err
		}
		if account.Available() < fee {
			return uc.ledger.Append(&domain.Transaction{
				ID:          uuid.New().String(),
				Email:       account.OwnerEmail,
				From:        account.IBAN,
				Timestamp:   input.Timestamp,
				Description: "Insufficient funds",
				Type:        domain.TxError,
				Status:      domain.TxSettled,
			})
		}
		account.Balance -= fee
	}

	user.Plan = newPlan
	return uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       account.OwnerEmail,
		To:          account.IBAN,
		Timestamp:   input.Timestamp,
		Description: "Upgrade plan to " + input.NewPlan,
		Type:        domain.TxPlanUpgrade,
		Status:      domain.TxSettled,
	})
}
