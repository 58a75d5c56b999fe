package payment

import (
	"github.com/google/uuid"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	paymentdto "github.com/LavaJover/shvark-banking-sim/internal/usecase/dto/payment"
)

// SendMoney moves funds between two accounts, converting into the
// receiver's currency and charging the sender's plan commission on top
// of the debited amount. Both endpoints may be given as an IBAN or as
// a registered alias.
func (uc *DefaultPaymentUsecase) SendMoney(input *paymentdto.SendMoneyInput) error {
	sender, err := uc.resolveAccount(input.FromIBAN)
	if err != nil {
		return err
	}
	receiver, err := uc.resolveAccount(input.ToIBAN)
	if err != nil {
		return err
	}
	user, err := uc.userRepo.GetUserByEmail(sender.OwnerEmail)
	if err != nil {
		return err
	}

	if sender.Available() < input.Amount {
		return uc.ledger.Append(&domain.Transaction{
			ID:          uuid.New().String(),
			Email:       sender.OwnerEmail,
			From:        sender.IBAN,
			To:          receiver.IBAN,
			Timestamp:   input.Timestamp,
			Description: "Insufficient funds",
			Type:        domain.TxError,
			Status:      domain.TxSettled,
		})
	}

	converted, err := uc.graph.Convert(input.Amount, sender.Currency, receiver.Currency)
	if err != nil {
		return err
	}

	sender.Balance -= input.Amount
	receiver.Deposit(converted)

	commission, err := uc.commissionFor(user.Plan, input.Amount, sender.Currency)
	if err != nil {
		return err
	}
	sender.Balance -= commission
	if uc.metrics != nil && commission > 0 {
		uc.metrics.CommissionTotal.WithLabelValues(string(user.Plan), sender.Currency).Add(commission)
	}
	uc.trackGoldEligibility(user, input.Amount, sender.Currency)

	// One entry per side so both histories show the transfer in their
	// own currency.
	if err := uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       sender.OwnerEmail,
		From:        sender.IBAN,
		To:          receiver.IBAN,
		Amount:      input.Amount,
		Currency:    sender.Currency,
		Timestamp:   input.Timestamp,
		Description: input.Description,
		Type:        domain.TxTransfer,
		Status:      domain.TxSettled,
	}); err != nil {
		return err
	}
	return uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       receiver.OwnerEmail,
		From:        sender.IBAN,
		To:          receiver.IBAN,
		Amount:      converted,
		Currency:    receiver.Currency,
		Timestamp:   input.Timestamp,
		Description: input.Description,
		Type:        domain.TxTransfer,
		Status:      domain.TxSettled,
	})
}

// resolveAccount looks up ref first as an IBAN, then as an alias name.
func (uc *DefaultPaymentUsecase) resolveAccount(ref string) (*domain.Account, error) {
	account, err := uc.accountRepo.GetAccountByIBAN(ref)
	if err == nil {
		return account, nil
	}
	alias, aliasErr := uc.aliasRepo.GetAliasByName(ref)
	if aliasErr != nil {
		return nil, err
	}
	return uc.accountRepo.GetAccountByIBAN(alias.IBAN)
}
