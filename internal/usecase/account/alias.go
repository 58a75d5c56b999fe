package account

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

// SetAlias registers a nickname for an existing account. Aliases are
// global and permanent: a name already taken stays bound to its first
// account.
func (uc *DefaultAccountUsecase) SetAlias(email, iban, name string) error {
	if _, err := uc.accountRepo.GetAccountByIBAN(iban); err != nil {
		return err
	}
	if _, err := uc.aliasRepo.GetAliasByName(name); err == nil {
		return domain.ErrAliasAlreadyExists
	}
	return uc.aliasRepo.AddAlias(&domain.Alias{
		Name:       name,
		IBAN:       iban,
		OwnerEmail: email,
	})
}
