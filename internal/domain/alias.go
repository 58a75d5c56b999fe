package domain

// Alias is a user-chosen nickname for an account, usable in place of
// the IBAN when addressing a transfer. Aliases are global: a name maps
// to exactly one account for the whole run.
type Alias struct {
	Name       string
	IBAN       string
	OwnerEmail string
}

type AliasRepository interface {
	AddAlias(alias *Alias) error
	GetAliasByName(name string) (*Alias, error)
}
