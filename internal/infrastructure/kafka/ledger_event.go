package publisher

type LedgerEvent struct {
	TransactionID string  `json:"transaction_id"`
	SplitID       uint64  `json:"split_id,omitempty"`
	Email         string  `json:"email"`
	IBAN          string  `json:"iban"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Timestamp     int     `json:"timestamp"`
	Description   string  `json:"description"`
}
