package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

const (
	savingsWithdrawalAgeLimit = 21
	savingsCommissionRate     = 0.02
)

// WithdrawSavings moves funds from a savings account into one of the
// owner's classic accounts in the requested currency. The owner must be
// of age; the standard plan pays a flat commission out of the savings
// balance. Ineligibility lands in the owner's history, an empty balance
// fails the command.
func (uc *DefaultAccountUsecase) WithdrawSavings(iban string, amount float64, currency string, timestamp int) error {
	account, err := uc.accountRepo.GetAccountByIBAN(iban)
	if err != nil {
		return err
	}
	if account.Type != domain.AccountSavings {
		return domain.ErrNotSavingsAccount
	}
	owner, err := uc.userRepo.GetUserByEmail(account.OwnerEmail)
	if err != nil {
		return err
	}

	if ageAt(owner.Birthdate, time.Now()) < savingsWithdrawalAgeLimit {
		return uc.recordRefusal(account, "You don't have the minimum age required.", timestamp)
	}

	target := uc.findClassicAccount(owner.Email, currency)
	if target == nil {
		return uc.recordRefusal(account, "You do not have a classic account.", timestamp)
	}

	withdrawn, err := uc.graph.Convert(amount, currency, account.Currency)
	if err != nil {
		return err
	}

	var commission float64
	if owner.Plan == domain.PlanStandard {
		commission = withdrawn * savingsCommissionRate
	}
	if account.Balance < withdrawn+commission {
		return domain.ErrInsufficientSavings
	}

	account.Balance -= withdrawn + commission
	target.Deposit(amount)

	description := "Savings withdrawal successful"
	if commission > 0 {
		description += fmt.Sprintf(", commission of %.4f %s was applied", commission, account.Currency)
	}
	return uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       owner.Email,
		From:        account.IBAN,
		To:          target.IBAN,
		Amount:      amount,
		Currency:    currency,
		Timestamp:   timestamp,
		Description: description,
		Type:        domain.TxSavingsWithdrawal,
		Status:      domain.TxSettled,
	})
}

func (uc *DefaultAccountUsecase) findClassicAccount(email, currency string) *domain.Account {
	for _, acc := range uc.accountRepo.GetAccountsByOwner(email) {
		if acc.Type == domain.AccountClassic && strings.EqualFold(acc.Currency, currency) {
			return acc
		}
	}
	return nil
}

func (uc *DefaultAccountUsecase) recordRefusal(account *domain.Account, reason string, timestamp int) error {
	return uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       account.OwnerEmail,
		From:        account.IBAN,
		Currency:    account.Currency,
		Timestamp:   timestamp,
		Description: reason,
		Type:        domain.TxSavingsWithdrawal,
		Status:      domain.TxSettled,
	})
}

// ageAt computes full years between a "2006-01-02" birthdate and now.
// An unparseable birthdate counts as underage.
func ageAt(birthdate string, now time.Time) int {
	birth, err := time.Parse("2006-01-02", birthdate)
	if err != nil {
		return 0
	}
	years := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		years--
	}
	return years
}
