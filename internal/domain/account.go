package domain

type AccountType string

const (
	AccountClassic AccountType = "classic"
	AccountSavings AccountType = "savings"
)

// CashbackState holds the historical counters consumed by the cashback
// strategies. Counters are created lazily on the first qualifying
// transaction and only ever grow during a run.
type CashbackState struct {
	TransactionsPerMerchant map[string]int
	SpendPerMerchantRon     map[string]float64
}

func (s *CashbackState) CumulativeSpendRon() float64 {
	var total float64
	for _, spent := range s.SpendPerMerchantRon {
		total += spent
	}
	return total
}

type Account struct {
	IBAN           string
	Currency       string
	Type           AccountType
	OwnerEmail     string
	Balance        float64
	MinimumBalance float64
	InterestRate   float64

	// HoldAmount is the portion of the balance blocked by accepted
	// split-payment shares. Holds are the actual fund commitment of a
	// split; settlement never debits on top of them.
	HoldAmount float64

	Cashback CashbackState
}

// Available is the balance a payment may draw on: holds are already
// committed elsewhere.
func (a *Account) Available() float64 {
	return a.Balance - a.HoldAmount
}

func (a *Account) Deposit(amount float64) {
	a.Balance += amount
}
