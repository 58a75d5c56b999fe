package payment

import (
	"testing"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/idgen"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/memstore"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/rates"
	"github.com/LavaJover/shvark-banking-sim/internal/usecase/cashback"
	paymentdto "github.com/LavaJover/shvark-banking-sim/internal/usecase/dto/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc        *DefaultPaymentUsecase
	users     *memstore.UserStore
	accounts  *memstore.AccountStore
	cards     *memstore.CardStore
	merchants *memstore.MerchantStore
	aliases   *memstore.AliasStore
	ledger    *memstore.Ledger
	graph     *rates.Graph
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:     memstore.NewUserStore(),
		accounts:  memstore.NewAccountStore(),
		cards:     memstore.NewCardStore(),
		merchants: memstore.NewMerchantStore(),
		aliases:   memstore.NewAliasStore(),
		ledger:    memstore.NewLedger(),
		graph:     rates.NewGraph(),
	}
	generator, err := idgen.NewGenerator()
	require.NoError(t, err)
	engine := cashback.NewDefaultEngine(f.graph, f.users)
	f.uc = NewDefaultPaymentUsecase(f.users, f.accounts, f.cards, f.merchants, f.aliases, f.ledger, f.graph, engine, generator, nil)
	return f
}

func (f *fixture) seed(t *testing.T, plan domain.Plan, balance float64) (*domain.Account, *domain.Card) {
	t.Helper()
	require.NoError(t, f.users.AddUser(&domain.User{Email: "ion@x.ro", Plan: plan}))
	account := &domain.Account{IBAN: "RO01", Currency: "RON", OwnerEmail: "ion@x.ro", Balance: balance}
	require.NoError(t, f.accounts.AddAccount(account))
	card := &domain.Card{Number: "4000111122223333", IBAN: "RO01", OwnerEmail: "ion@x.ro", Status: domain.CardActive}
	require.NoError(t, f.cards.AddCard(card))
	require.NoError(t, f.merchants.AddMerchant(&domain.Merchant{
		ID: 1, Name: "MegaImage", Category: "Food", Policy: domain.PolicyTransactionCount,
	}))
	return account, card
}

func payInput(amount float64, currency string) *paymentdto.PayOnlineInput {
	return &paymentdto.PayOnlineInput{
		Email:      "ion@x.ro",
		CardNumber: "4000111122223333",
		Amount:     amount,
		Currency:   currency,
		Merchant:   "MegaImage",
		Timestamp:  10,
	}
}

func TestPayOnlineDebitsAmountAndStandardCommission(t *testing.T) {
	f := newFixture(t)
	account, _ := f.seed(t, domain.PlanStandard, 1000)

	require.NoError(t, f.uc.PayOnline(payInput(100, "RON")))

	// 100 + 0.2% commission.
	assert.InDelta(t, 1000-100-0.2, account.Balance, 1e-9)

	entries := f.ledger.All()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.TxCardPayment, entries[0].Type)
	assert.Equal(t, "Card payment", entries[0].Description)
	assert.InDelta(t, 100.0, entries[0].Amount, 1e-9)
}

func TestPayOnlineConvertsIntoAccountCurrency(t *testing.T) {
	f := newFixture(t)
	f.graph.AddRate("EUR", "RON", 5)
	account, _ := f.seed(t, domain.PlanGold, 1000)

	require.NoError(t, f.uc.PayOnline(payInput(10, "EUR")))

	// 10 EUR -> 50 RON, gold pays no commission.
	assert.InDelta(t, 950, account.Balance, 1e-9)
}

func TestPayOnlineInsufficientFundsIsSoft(t *testing.T) {
	f := newFixture(t)
	account, _ := f.seed(t, domain.PlanStandard, 50)

	require.NoError(t, f.uc.PayOnline(payInput(100, "RON")))

	assert.Equal(t, 50.0, account.Balance)
	entries := f.ledger.All()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.TxError, entries[0].Type)
	assert.Equal(t, "Insufficient funds", entries[0].Description)
}

func TestPayOnlineHoldsReduceAvailableBalance(t *testing.T) {
	f := newFixture(t)
	account, _ := f.seed(t, domain.PlanStandard, 120)
	account.HoldAmount = 50

	// Balance covers the debit but 50 is committed to a split.
	require.NoError(t, f.uc.PayOnline(payInput(100, "RON")))

	assert.Equal(t, 120.0, account.Balance)
	assert.Equal(t, "Insufficient funds", f.ledger.All()[0].Description)
}

func TestPayOnlineFrozenCardIsSoft(t *testing.T) {
	f := newFixture(t)
	account, card := f.seed(t, domain.PlanStandard, 1000)
	card.Status = domain.CardFrozen

	require.NoError(t, f.uc.PayOnline(payInput(100, "RON")))

	assert.Equal(t, 1000.0, account.Balance)
	assert.Equal(t, "The card is frozen", f.ledger.All()[0].Description)
}

func TestPayOnlineUnknownMerchantFailsCommand(t *testing.T) {
	f := newFixture(t)
	f.seed(t, domain.PlanStandard, 1000)

	input := payInput(100, "RON")
	input.Merchant = "Nowhere"
	assert.ErrorIs(t, f.uc.PayOnline(input), domain.ErrMerchantNotFound)
}

func TestPayOnlineCreditsCashbackAfterDebit(t *testing.T) {
	f := newFixture(t)
	account, _ := f.seed(t, domain.PlanGold, 1000)

	// Food policy fires on the second transaction at the merchant:
	// 2% of 100 comes straight back onto the balance.
	require.NoError(t, f.uc.PayOnline(payInput(100, "RON")))
	require.NoError(t, f.uc.PayOnline(payInput(100, "RON")))

	assert.InDelta(t, 1000-200+2, account.Balance, 1e-9)
	assert.Equal(t, 2, account.Cashback.TransactionsPerMerchant["MegaImage"])
}

func TestPayOnlineRotatesOneTimeCard(t *testing.T) {
	f := newFixture(t)
	_, card := f.seed(t, domain.PlanGold, 1000)
	card.OneTime = true
	oldNumber := card.Number

	require.NoError(t, f.uc.PayOnline(payInput(100, "RON")))

	assert.NotEqual(t, oldNumber, card.Number)
	types := []domain.TransactionType{}
	for _, entry := range f.ledger.All() {
		types = append(types, entry.Type)
	}
	assert.Equal(t, []domain.TransactionType{domain.TxCardPayment, domain.TxCardDeleted, domain.TxCardCreated}, types)
}

func TestSendMoneyConvertsForReceiver(t *testing.T) {
	f := newFixture(t)
	f.graph.AddRate("RON", "EUR", 0.2)
	sender, _ := f.seed(t, domain.PlanGold, 1000)
	receiver := &domain.Account{IBAN: "RO02", Currency: "EUR", OwnerEmail: "ana@x.ro", Balance: 10}
	require.NoError(t, f.accounts.AddAccount(receiver))

	require.NoError(t, f.uc.SendMoney(&paymentdto.SendMoneyInput{
		FromIBAN: "RO01", ToIBAN: "RO02", Amount: 100, Description: "rent", Timestamp: 4,
	}))

	assert.InDelta(t, 900, sender.Balance, 1e-9)
	assert.InDelta(t, 30, receiver.Balance, 1e-9)

	entries := f.ledger.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "RON", entries[0].Currency)
	assert.Equal(t, "EUR", entries[1].Currency)
	assert.InDelta(t, 20, entries[1].Amount, 1e-9)
}

func TestSendMoneyInsufficientFundsIsSoft(t *testing.T) {
	f := newFixture(t)
	sender, _ := f.seed(t, domain.PlanStandard, 30)
	require.NoError(t, f.accounts.AddAccount(&domain.Account{IBAN: "RO02", Currency: "RON", OwnerEmail: "ana@x.ro"}))

	require.NoError(t, f.uc.SendMoney(&paymentdto.SendMoneyInput{
		FromIBAN: "RO01", ToIBAN: "RO02", Amount: 100, Timestamp: 4,
	}))

	assert.Equal(t, 30.0, sender.Balance)
	assert.Equal(t, domain.TxError, f.ledger.All()[0].Type)
}

func TestSendMoneyResolvesAliasesOnBothSides(t *testing.T) {
	f := newFixture(t)
	sender, _ := f.seed(t, domain.PlanGold, 1000)
	receiver := &domain.Account{IBAN: "RO02", Currency: "RON", OwnerEmail: "ana@x.ro", Balance: 10}
	require.NoError(t, f.accounts.AddAccount(receiver))
	require.NoError(t, f.aliases.AddAlias(&domain.Alias{Name: "my_main", IBAN: "RO01", OwnerEmail: "ion@x.ro"}))
	require.NoError(t, f.aliases.AddAlias(&domain.Alias{Name: "rent_ana", IBAN: "RO02", OwnerEmail: "ana@x.ro"}))

	require.NoError(t, f.uc.SendMoney(&paymentdto.SendMoneyInput{
		FromIBAN: "my_main", ToIBAN: "rent_ana", Amount: 100, Description: "rent", Timestamp: 4,
	}))

	assert.InDelta(t, 900, sender.Balance, 1e-9)
	assert.InDelta(t, 110, receiver.Balance, 1e-9)
}

func TestSendMoneyUnknownReferenceFailsCommand(t *testing.T) {
	f := newFixture(t)
	f.seed(t, domain.PlanGold, 1000)

	err := f.uc.SendMoney(&paymentdto.SendMoneyInput{
		FromIBAN: "RO01", ToIBAN: "no_such_alias", Amount: 100, Timestamp: 4,
	})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestCashWithdrawalConvertsAndCharges(t *testing.T) {
	f := newFixture(t)
	f.graph.AddRate("RON", "EUR", 0.2)
	account, _ := f.seed(t, domain.PlanStandard, 1000)
	account.Currency = "EUR"

	// 500 RON is 100 EUR; the standard plan pays 0.2% of the converted
	// amount on top.
	require.NoError(t, f.uc.CashWithdrawal(&paymentdto.CashWithdrawalInput{
		Email: "ion@x.ro", CardNumber: "4000111122223333", Amount: 500, Timestamp: 6,
	}))

	assert.InDelta(t, 1000-100-0.2, account.Balance, 1e-9)

	entries := f.ledger.All()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.TxCashWithdrawal, entries[0].Type)
	assert.Equal(t, "Cash withdrawal of 500.0", entries[0].Description)
	assert.InDelta(t, 500.0, entries[0].Amount, 1e-9)
}

func TestCashWithdrawalInsufficientFundsIsSoft(t *testing.T) {
	f := newFixture(t)
	account, _ := f.seed(t, domain.PlanStandard, 50)

	require.NoError(t, f.uc.CashWithdrawal(&paymentdto.CashWithdrawalInput{
		Email: "ion@x.ro", CardNumber: "4000111122223333", Amount: 100, Timestamp: 6,
	}))

	assert.Equal(t, 50.0, account.Balance)
	entries := f.ledger.All()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.TxError, entries[0].Type)
	assert.Equal(t, "Insufficient funds", entries[0].Description)
}

func TestCashWithdrawalFrozenCardFailsCommand(t *testing.T) {
	f := newFixture(t)
	account, card := f.seed(t, domain.PlanStandard, 1000)
	card.Status = domain.CardFrozen

	err := f.uc.CashWithdrawal(&paymentdto.CashWithdrawalInput{
		Email: "ion@x.ro", CardNumber: "4000111122223333", Amount: 100, Timestamp: 6,
	})
	assert.ErrorIs(t, err, domain.ErrCardFrozen)
	assert.Equal(t, 1000.0, account.Balance)
	assert.Empty(t, f.ledger.All())
}

func TestCommissionByPlan(t *testing.T) {
	tests := []struct {
		name   string
		plan   domain.Plan
		amount float64
		want   float64
	}{
		{"standard always pays", domain.PlanStandard, 100, 0.2},
		{"student free", domain.PlanStudent, 1000, 0},
		{"silver under threshold free", domain.PlanSilver, 400, 0},
		{"silver over threshold pays", domain.PlanSilver, 600, 0.6},
		{"gold free", domain.PlanGold, 10000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			got, err := f.uc.commissionFor(tt.plan, tt.amount, "RON")
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestUpgradePlanChargesConvertedFee(t *testing.T) {
	f := newFixture(t)
	account, _ := f.seed(t, domain.PlanStandard, 1000)

	require.NoError(t, f.uc.UpgradePlan(&paymentdto.UpgradePlanInput{IBAN: "RO01", NewPlan: "silver", Timestamp: 8}))

	user, err := f.users.GetUserByEmail("ion@x.ro")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanSilver, user.Plan)
	assert.InDelta(t, 900, account.Balance, 1e-9)
}

func TestUpgradePlanDowngradeIsNoop(t *testing.T) {
	f := newFixture(t)
	account, _ := f.seed(t, domain.PlanGold, 1000)

	require.NoError(t, f.uc.UpgradePlan(&paymentdto.UpgradePlanInput{IBAN: "RO01", NewPlan: "silver", Timestamp: 8}))

	user, err := f.users.GetUserByEmail("ion@x.ro")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanGold, user.Plan)
	assert.Equal(t, 1000.0, account.Balance)
	assert.Empty(t, f.ledger.All())
}

func TestUpgradePlanAutomaticGoldIsFree(t *testing.T) {
	f := newFixture(t)
	account, _ := f.seed(t, domain.PlanSilver, 5000)
	user, err := f.users.GetUserByEmail("ion@x.ro")
	require.NoError(t, err)

	// Five payments of at least 300 RON earn the free upgrade.
	for i := 0; i < 5; i++ {
		require.NoError(t, f.uc.PayOnline(payInput(300, "RON")))
	}
	require.Equal(t, 5, user.EligibleGoldPayments)
	balanceBefore := account.Balance

	require.NoError(t, f.uc.UpgradePlan(&paymentdto.UpgradePlanInput{IBAN: "RO01", NewPlan: "gold", Timestamp: 9}))

	assert.Equal(t, domain.PlanGold, user.Plan)
	assert.Equal(t, balanceBefore, account.Balance)
}
