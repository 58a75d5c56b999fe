package domain

type CashbackPolicy string

const (
	PolicyTransactionCount  CashbackPolicy = "nrOfTransactions"
	PolicySpendingThreshold CashbackPolicy = "spendingThreshold"
)

type Merchant struct {
	ID       int
	Name     string
	Account  string
	Category string
	Policy   CashbackPolicy
}
