package domain

// MerchantDirectory is read-only after the initial load. Name lookup is
// case-insensitive.
type MerchantDirectory interface {
	AddMerchant(merchant *Merchant) error
	GetMerchantByName(name string) (*Merchant, error)
	GetMerchantByID(id int) (*Merchant, error)
	AllMerchants() []*Merchant
}
