package account

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

func (uc *DefaultAccountUsecase) CreateAccount(email, currency string, accType domain.AccountType, interestRate float64, timestamp int) (*domain.Account, error) {
	if _, err := uc.userRepo.GetUserByEmail(email); err != nil {
		return nil, err
	}

	account := &domain.Account{
		IBAN:         uc.generator.IBAN(),
		Currency:     currency,
		Type:         accType,
		OwnerEmail:   email,
		InterestRate: interestRate,
	}
	if err := uc.accountRepo.AddAccount(account); err != nil {
		return nil, err
	}

	if err := uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       email,
		To:          account.IBAN,
		Currency:    currency,
		Timestamp:   timestamp,
		Description: "New account created",
		Type:        domain.TxAccountCreated,
		Status:      domain.TxSettled,
	}); err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount refuses while any money is left so funds cannot vanish
// with the account. Linked cards go with it.
func (uc *DefaultAccountUsecase) DeleteAccount(email, iban string, timestamp int) error {
	account, err := uc.accountRepo.GetAccountByIBAN(iban)
	if err != nil {
		return err
	}
	if account.OwnerEmail != email {
		return domain.ErrAccountNotFound
	}
	if account.Balance != 0 {
		return domain.ErrBalanceNotZero
	}

	for _, card := range uc.cardRepo.GetCardsByIBAN(iban) {
		if err := uc.cardRepo.DeleteCard(card.Number); err != nil {
			return err
		}
	}
	if err := uc.accountRepo.DeleteAccount(iban); err != nil {
		return err
	}

	return uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       email,
		From:        iban,
		Timestamp:   timestamp,
		Description: fmt.Sprintf("Account %s deleted", iban),
		Type:        domain.TxAccountDeleted,
		Status:      domain.TxSettled,
	})
}

func (uc *DefaultAccountUsecase) SetMinimumBalance(iban string, amount float64) error {
	account, err := uc.accountRepo.GetAccountByIBAN(iban)
	if err != nil {
		return err
	}
	account.MinimumBalance = amount
	return nil
}
