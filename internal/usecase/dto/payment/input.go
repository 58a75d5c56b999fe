package paymentdto

type PayOnlineInput struct {
	Email      string
	CardNumber string
	Amount     float64
	Currency   string
	Merchant   string
	Timestamp  int
}

type SendMoneyInput struct {
	FromIBAN    string
	ToIBAN      string
	Amount      float64
	Description string
	Timestamp   int
}

type CashWithdrawalInput struct {
	Email      string
	CardNumber string
	Amount     float64
	Timestamp  int
}

type UpgradePlanInput struct {
	IBAN      string
	NewPlan   string
	Timestamp int
}
