package payment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	paymentdto "github.com/LavaJover/shvark-banking-sim/internal/usecase/dto/payment"
)

// CashWithdrawal debits an ATM withdrawal from the account behind the
// card. The amount is always given in RON and converted into the
// account currency before the debit; the commission is charged on the
// converted amount. A frozen card fails the command outright, a short
// balance lands as a failed entry in the owner's history.
func (uc *DefaultPaymentUsecase) CashWithdrawal(input *paymentdto.CashWithdrawalInput) error {
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

	if card.Status == domain.CardFrozen {
		return domain.ErrCardFrozen
	}

	converted, err := uc.graph.Convert(input.Amount, "RON", account.Currency)
	if err != nil {
		return err
	}

	// The withdrawal checks the raw balance, not the held-adjusted
	// available amount.
	if account.Balance < converted {
		return uc.ledger.Append(&domain.Transaction{
			ID:          uuid.New().String(),
			Email:       input.Email,
			From:        account.IBAN,
			To:          account.IBAN,
			Timestamp:   input.Timestamp,
			Description: "Insufficient funds",
			Type:        domain.TxError,
			Status:      domain.TxSettled,
			CardNumber:  card.Number,
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

	return uc.ledger.Append(&domain.Transaction{
		ID:          uuid.New().String(),
		Email:       input.Email,
		From:        account.IBAN,
		To:          account.IBAN,
		Amount:      input.Amount,
		Timestamp:   input.Timestamp,
		Description: fmt.Sprintf("Cash withdrawal of %s", formatDecimal(input.Amount)),
		Type:        domain.TxCashWithdrawal,
		Status:      domain.TxSettled,
		CardNumber:  card.Number,
	})
}

// formatDecimal renders an amount with at least one fractional digit,
// so whole numbers print as "500.0" rather than "500".
func formatDecimal(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
