package account

import (
	"github.com/google/uuid"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

func (uc *DefaultAccountUsecase) CreateCard(email, iban string, oneTime bool, timestamp int) (*domain.Card, error) {
	account, err := uc.accountRepo.GetAccountByIBAN(iban)
	if err != nil {
		return nil, err
	}
	if account.OwnerEmail != email {
		return nil, domain.ErrAccountNotFound
	}

	card := &domain.Card{
		Number:     uc.generator.CardNumber(),
		IBAN:       iban,
		OwnerEmail: email,
		Status:     domain.CardActive,
		OneTime:    oneTime,
	}
	if err := uc.cardRepo.AddCard(card); err != nil {
		return nil, err
	}

	if err := uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       email,
		To:          iban,
		Timestamp:   timestamp,
		Description: "New card created",
		Type:        domain.TxCardCreated,
		Status:      domain.TxSettled,
		CardNumber:  card.Number,
	}); err != nil {
		return nil, err
	}
	return card, nil
}

func (uc *DefaultAccountUsecase) DeleteCard(number string, timestamp int) error {
	card, err := uc.cardRepo.GetCardByNumber(number)
	if err != nil {
		return err
	}
	if err := uc.cardRepo.DeleteCard(number); err != nil {
		return err
	}

	return uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       card.OwnerEmail,
		From:        card.IBAN,
		Timestamp:   timestamp,
		Description: "The card has been destroyed",
		Type:        domain.TxCardDeleted,
		Status:      domain.TxSettled,
		CardNumber:  number,
	})
}

// CheckCardStatus freezes the card once the account dips to its
// minimum balance. Freezing is one-way; payments on a frozen card are
// soft-rejected by the payment usecase.
func (uc *DefaultAccountUsecase) CheckCardStatus(number string, timestamp int) error {
	card, err := uc.cardRepo.GetCardByNumber(number)
	if err != nil {
		return err
	}
	account, err := uc.accountRepo.GetAccountByIBAN(card.IBAN)
	if err != nil {
		return err
	}

	if card.Status == domain.CardActive && account.Balance <= account.MinimumBalance {
		card.Status = domain.CardFrozen
		return uc.ledger.Append(&domain.Transaction{
			ID:          uuid.New().String(),
			Email:       card.OwnerEmail,
			From:        card.IBAN,
			Timestamp:   timestamp,
			Description: "You have reached the minimum amount of funds, the card will be frozen",
			Type:        domain.TxError,
			Status:      domain.TxSettled,
			CardNumber:  number,
		})
	}
	return nil
}
