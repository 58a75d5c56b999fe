package payment

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/idgen"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/rates"
	"github.com/LavaJover/shvark-banking-sim/internal/usecase/cashback"
	paymentdto "github.com/LavaJover/shvark-banking-sim/internal/usecase/dto/payment"
)

type Usecase interface {
	PayOnline(input *paymentdto.PayOnlineInput) error
	SendMoney(input *paymentdto.SendMoneyInput) error
	CashWithdrawal(input *paymentdto.CashWithdrawalInput) error
	AddFunds(iban string, amount float64) error
	UpgradePlan(input *paymentdto.UpgradePlanInput) error
}

type DefaultPaymentUsecase struct {
	userRepo    domain.UserRepository
	accountRepo domain.AccountRepository
	cardRepo    domain.CardRepository
	merchantDir domain.MerchantDirectory
	aliasRepo   domain.AliasRepository
	ledger      domain.LedgerRepository
	graph       *rates.Graph
	cashback    cashback.Engine
	generator   *idgen.Generator

	// Optional; nil disables instrumentation.
	metrics *metrics.ReplayMetrics
}

func NewDefaultPaymentUsecase(
	userRepo domain.UserRepository,
	accountRepo domain.AccountRepository,
	cardRepo domain.CardRepository,
	merchantDir domain.MerchantDirectory,
	aliasRepo domain.AliasRepository,
	ledger domain.LedgerRepository,
	graph *rates.Graph,
	cashbackEngine cashback.Engine,
	generator *idgen.Generator,
	replayMetrics *metrics.ReplayMetrics,
) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		merchantDir: merchantDir,
		aliasRepo:   aliasRepo,
		ledger:      ledger,
		graph:       graph,
		cashback:    cashbackEngine,
		generator:   generator,
		metrics:     replayMetrics,
	}
}

func (uc *DefaultPaymentUsecase) AddFunds(iban string, amount float64) error {
	account, err := uc.accountRepo.GetAccountByIBAN(iban)
	if err != nil {
		return err
	}
	account.Deposit(amount)
	return nil
}
