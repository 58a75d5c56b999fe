package strategies

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

const (
	foodThreshold    = 2
	clothesThreshold = 5
	techThreshold    = 10

	foodRate    = 0.02
	clothesRate = 0.05
	techRate    = 0.1
)

// TransactionCountStrategy rewards the Nth transaction at a merchant,
// with N and the rate fixed per merchant category. The match is on the
// exact count, not a threshold: the reward fires once per
// account/merchant pair and later transactions earn nothing.
type TransactionCountStrategy struct {
	rules map[string]map[int]float64
}

func NewTransactionCountStrategy() *TransactionCountStrategy {
	return &TransactionCountStrategy{
		rules: map[string]map[int]float64{
			"Food":    {foodThreshold: foodRate},
			"Clothes": {clothesThreshold: clothesRate},
			"Tech":    {techThreshold: techRate},
		},
	}
}

func (s *TransactionCountStrategy) Name() string {
	return "nrOfTransactions"
}

func (s *TransactionCountStrategy) Calculate(account *domain.Account, merchant *domain.Merchant, amount float64, currency string) (float64, error) {
	if account.Cashback.TransactionsPerMerchant == nil {
		account.Cashback.TransactionsPerMerchant = make(map[string]int)
	}

	// The counter moves on every call, reward or not.
	count := account.Cashback.TransactionsPerMerchant[merchant.Name] + 1
	account.Cashback.TransactionsPerMerchant[merchant.Name] = count

	rules := s.rules[merchant.Category]
	if rate, ok := rules[count]; ok {
		// Paid in the transaction's own currency, no conversion.
		return rate * amount, nil
	}
	return 0, nil
}
