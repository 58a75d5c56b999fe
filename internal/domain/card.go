package domain

type CardStatus string

const (
	CardActive CardStatus = "active"
	CardFrozen CardStatus = "frozen"
)

type Card struct {
	Number     string
	IBAN       string
	OwnerEmail string
	Status     CardStatus
	OneTime    bool
}
