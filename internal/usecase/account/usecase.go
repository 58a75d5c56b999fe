package account

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/idgen"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/rates"
)

type Usecase interface {
	CreateAccount(email, currency string, accType domain.AccountType, interestRate float64, timestamp int) (*domain.Account, error)
	DeleteAccount(email, iban string, timestamp int) error
	SetMinimumBalance(iban string, amount float64) error
	SetAlias(email, iban, name string) error
	CreateCard(email, iban string, oneTime bool, timestamp int) (*domain.Card, error)
	DeleteCard(number string, timestamp int) error
	CheckCardStatus(number string, timestamp int) error
	AddInterest(iban string, timestamp int) error
	ChangeInterestRate(iban string, rate float64, timestamp int) error
	WithdrawSavings(iban string, amount float64, currency string, timestamp int) error
}

type DefaultAccountUsecase struct {
	userRepo    domain.UserRepository
	accountRepo domain.AccountRepository
	cardRepo    domain.CardRepository
	aliasRepo   domain.AliasRepository
	ledger      domain.LedgerRepository
	graph       *rates.Graph
	generator   *idgen.Generator
}

func NewDefaultAccountUsecase(
	userRepo domain.UserRepository,
	accountRepo domain.AccountRepository,
	cardRepo domain.CardRepository,
	aliasRepo domain.AliasRepository,
	ledger domain.LedgerRepository,
	graph *rates.Graph,
	generator *idgen.Generator,
) *DefaultAccountUsecase {
	return &DefaultAccountUsecase{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		aliasRepo:   aliasRepo,
		ledger:      ledger,
		graph:       graph,
		generator:   generator,
	}
}
