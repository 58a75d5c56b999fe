package account

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

func (uc *DefaultAccountUsecase) AddInterest(iban string, timestamp int) error {
	account, err := uc.accountRepo.GetAccountByIBAN(iban)
	if err != nil {
		return err
	}
	if account.Type != domain.AccountSavings {
		return domain.ErrNotSavingsAccount
	}

	interest := account.Balance * account.InterestRate
	account.Deposit(interest)

	return uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       account.OwnerEmail,
		To:          iban,
		Amount:      interest,
		Currency:    account.Currency,
		Timestamp:   timestamp,
		Description: "Interest rate income",
		Type:        domain.TxInterest,
		Status:      domain.TxSettled,
	})
}

func (uc *DefaultAccountUsecase) ChangeInterestRate(iban string, rate float64, timestamp int) error {
	account, err := uc.accountRepo.GetAccountByIBAN(iban)
	if err != nil {
		return err
	}
	if account.Type != domain.AccountSavings {
		return domain.ErrNotSavingsAccount
	}

	account.InterestRate = rate
	return uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       account.OwnerEmail,
		To:          iban,
		Timestamp:   timestamp,
		Description: fmt.Sprintf("Interest rate of the account changed to %v", rate),
		Type:        domain.TxInterest,
		Status:      domain.TxSettled,
	})
}
