package payment

import (
	"github.com/google/uuid"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	paymentdto "github.com/LavaJover/shvark-banking-sim/internal/usecase/dto/payment"
)

// PayOnline debits a card payment to a merchant and runs the cashback
// engine afterwards. Frozen cards and short balances are soft failures:
// they land in the owner's history instead of failing the command.
func (uc *DefaultPaymentUsecase) PayOnline(input *paymentdto.PayOnlineInput) error {
	card, err := uc.cardRepo.GetCardByNumber(input.CardNumber)
	if err != nil {
		return err
	}
	account, err := uc.accountRepo.GetAccountByIBAN(card.IBAN)
	if err != nil {
		return err
	}
	user, err := uc.userRepo.GetUserByEmail(account.OwnerEmail)
	if err != nil {
		return err
	}
	merchant, err := uc.merchantDir.GetMerchantByName(input.Merchant)
	if err != nil {
		return err
	}

	if card.Status == domain.CardFrozen {
		return uc.ledger.Append(&domain.Transaction{
			ID:          uuid.New().String(),
			Email:       account.OwnerEmail,
			From:        account.IBAN,
			Timestamp:   input.Timestamp,
			Description: "The card is frozen",
			Type:        domain.TxError,
			Status:      domain.TxSettled,
			CardNumber:  card.Number,
		})
	}

	converted, err := uc.graph.Convert(input.Amount, input.Currency, account.Currency)
	if err != nil {
		return err
	}
	if converted == 0 {
		return nil
	}

	if account.Available() < converted {
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

	account.Balance -= converted

	commission, err := uc.commissionFor(user.Plan, converted, account.Currency)
	if err != nil {
		return err
	}
	account.Balance -= commission
	if uc.metrics != nil && commission > 0 {
		uc.metrics.CommissionTotal.WithLabelValues(string(user.Plan), account.Currency).Add(commission)
	}
	uc.trackGoldEligibility(user, converted, account.Currency)

	if err := uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       account.OwnerEmail,
		From:        account.IBAN,
		To:          account.IBAN,
		Amount:      converted,
		Currency:    account.Currency,
		Timestamp:   input.Timestamp,
		Description: "Card payment",
		Type:        domain.TxCardPayment,
		Status:      domain.TxSettled,
		CardNumber:  card.Number,
		Merchant:    merchant.Name,
	}); err != nil {
		return err
	}

	// Cashback runs after the debit. The strategy mutates the
	// historical counters either way; only a positive value is
	// credited back, and by the caller, never by the strategy.
	reward, err := uc.cashback.Apply(account, merchant, converted, account.Currency)
	if err != nil {
		return err
	}
	if reward > 0 {
		account.Deposit(reward)
		if uc.metrics != nil {
			uc.metrics.CashbackPaidTotal.WithLabelValues(string(merchant.Policy), account.Currency).Add(reward)
		}
	}

	if card.OneTime {
		uc.rotateOneTimeCard(card, account, input.Timestamp)
	}
	return nil
}

// rotateOneTimeCard retires a one-time card after a successful payment
// and issues a fresh number on the same account.
func (uc *DefaultPaymentUsecase) rotateOneTimeCard(card *domain.Card, account *domain.Account, timestamp int) {
	oldNumber := card.Number
	card.Number = uc.generator.CardNumber()

	uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       account.OwnerEmail,
		From:        account.IBAN,
		Timestamp:   timestamp,
		Description: "The card has been destroyed",
		Type:        domain.TxCardDeleted,
		Status:      domain.TxSettled,
		CardNumber:  oldNumber,
	})
	uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       account.OwnerEmail,
		To:          account.IBAN,
		Timestamp:   timestamp,
		Description: "New card created",
		Type:        domain.TxCardCreated,
		Status:      domain.TxSettled,
		CardNumber:  card.Number,
	})
}
