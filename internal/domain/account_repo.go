package domain

type AccountRepository interface {
	AddAccount(account *Account) error
	GetAccountByIBAN(iban string) (*Account, error)
	GetAccountsByOwner(email string) []*Account
	DeleteAccount(iban string) error
	AllAccounts() []*Account
}
