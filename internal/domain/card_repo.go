package domain

type CardRepository interface {
	AddCard(card *Card) error
	GetCardByNumber(number string) (*Card, error)
	GetCardsByIBAN(iban string) []*Card
	DeleteCard(number string) error
}
