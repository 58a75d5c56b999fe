package domain

type TransactionType string

const (
	TxAccountCreated    TransactionType = "ACCOUNT_CREATED"
	TxAccountDeleted    TransactionType = "ACCOUNT_DELETED"
	TxCardCreated       TransactionType = "CARD_CREATED"
	TxCardDeleted       TransactionType = "CARD_DELETED"
	TxCardPayment       TransactionType = "CARD_PAYMENT"
	TxTransfer          TransactionType = "TRANSFER"
	TxSplit             TransactionType = "SPLIT"
	TxCashWithdrawal    TransactionType = "CASH_WITHDRAWAL"
	TxSavingsWithdrawal TransactionType = "SAVINGS_WITHDRAWAL"
	TxPlanUpgrade       TransactionType = "PLAN_UPGRADE"
	TxInterest          TransactionType = "INTEREST"
	TxError             TransactionType = "ERROR"
)

type TransactionStatus string

const (
	TxPending TransactionStatus = "PENDING"
	TxSettled TransactionStatus = "SETTLED"
)

// Transaction is one append-only ledger entry. Split entries carry the
// SplitID assigned at request creation so settlement and cancellation
// can flip them without relying on timestamp uniqueness.
type Transaction struct {
	ID          string
	SplitID     uint64
	Email       string
	From        string
	To          string
	Amount      float64
	TotalAmount float64
	Currency    string
	Timestamp   int
	Description string
	Type        TransactionType
	Status      TransactionStatus
	Error       string
	CardNumber  string
	Merchant    string

	// Split bookkeeping, empty for everything else.
	InvolvedAccounts []string
	ShareAmounts     []float64
	SplitKind        string
}
