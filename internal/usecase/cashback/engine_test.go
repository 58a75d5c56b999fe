package cashback

import (
	"testing"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/memstore"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/rates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, plan domain.Plan) (*DefaultEngine, *domain.Account, *rates.Graph) {
	t.Helper()
	graph := rates.NewGraph()
	users := memstore.NewUserStore()
	require.NoError(t, users.AddUser(&domain.User{Email: "dana@x.ro", Plan: plan}))
	account := &domain.Account{IBAN: "RO01", Currency: "RON", OwnerEmail: "dana@x.ro", Balance: 1000}
	return NewDefaultEngine(graph, users), account, graph
}

func TestTransactionCountFiresOnExactCountOnly(t *testing.T) {
	tests := []struct {
		category string
		fireAt   int
		rate     float64
	}{
		{"Food", 2, 0.02},
		{"Clothes", 5, 0.05},
		{"Tech", 10, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			engine, account, _ := newTestEngine(t, domain.PlanStandard)
			merchant := &domain.Merchant{Name: tt.category + " Shop", Category: tt.category, Policy: domain.PolicyTransactionCount}

			for n := 1; n <= tt.fireAt+2; n++ {
				got, err := engine.Apply(account, merchant, 100, "RON")
				require.NoError(t, err)
				if n == tt.fireAt {
					assert.InDelta(t, tt.rate*100, got, 1e-9, "transaction %d must fire", n)
				} else {
					assert.Zero(t, got, "transaction %d must not fire", n)
				}
			}
			assert.Equal(t, tt.fireAt+2, account.Cashback.TransactionsPerMerchant[merchant.Name])
		})
	}
}

func TestTransactionCountTracksMerchantsByName(t *testing.T) {
	engine, account, _ := newTestEngine(t, domain.PlanStandard)
	pizza := &domain.Merchant{Name: "Pizza Place", Category: "Food", Policy: domain.PolicyTransactionCount}
	burger := &domain.Merchant{Name: "Burger Place", Category: "Food", Policy: domain.PolicyTransactionCount}

	_, err := engine.Apply(account, pizza, 50, "RON")
	require.NoError(t, err)
	got, err := engine.Apply(account, burger, 50, "RON")
	require.NoError(t, err)

	// Counters are per merchant name, so the second merchant's first
	// transaction earns nothing.
	assert.Zero(t, got)

	got, err = engine.Apply(account, pizza, 50, "RON")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestSpendingThresholdTierSelection(t *testing.T) {
	engine, account, _ := newTestEngine(t, domain.PlanStandard)
	merchant := &domain.Merchant{Name: "MegaImage", Category: "Food", Policy: domain.PolicySpendingThreshold}

	// Below 100 RON cumulative: no cashback, counter still moves.
	got, err := engine.Apply(account, merchant, 90, "RON")
	require.NoError(t, err)
	assert.Zero(t, got)
	assert.InDelta(t, 90, account.Cashback.CumulativeSpendRon(), 1e-9)

	// Crosses 100: first tier, 0.1% of the current amount.
	got, err = engine.Apply(account, merchant, 20, "RON")
	require.NoError(t, err)
	assert.InDelta(t, 0.02, got, 1e-9)

	// Crosses 300: second tier, 0.2%.
	got, err = engine.Apply(account, merchant, 200, "RON")
	require.NoError(t, err)
	assert.InDelta(t, 0.4, got, 1e-9)

	// Crosses 500: third tier, 0.25%.
	got, err = engine.Apply(account, merchant, 200, "RON")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestSpendingThresholdRateNeverDecreases(t *testing.T) {
	engine, account, _ := newTestEngine(t, domain.PlanSilver)
	merchant := &domain.Merchant{Name: "eMag", Category: "Tech", Policy: domain.PolicySpendingThreshold}

	amount := 120.0
	lastRate := 0.0
	for i := 0; i < 8; i++ {
		got, err := engine.Apply(account, merchant, amount, "RON")
		require.NoError(t, err)
		rate := got / amount
		assert.GreaterOrEqual(t, rate+1e-12, lastRate)
		lastRate = rate
	}
	// 8 * 120 is far past the top tier: silver pays 0.5%.
	assert.InDelta(t, 0.005, lastRate, 1e-9)
}

func TestSpendingThresholdRatesByPlan(t *testing.T) {
	tests := []struct {
		plan domain.Plan
		want float64
	}{
		{domain.PlanStandard, 0.0025 * 400},
		{domain.PlanStudent, 0.0025 * 400},
		{domain.PlanSilver, 0.005 * 400},
		{domain.PlanGold, 0.007 * 400},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan), func(t *testing.T) {
			engine, account, _ := newTestEngine(t, tt.plan)
			merchant := &domain.Merchant{Name: "eMag", Category: "Tech", Policy: domain.PolicySpendingThreshold}

			// 600 RON cumulative puts the account in the top tier.
			_, err := engine.Apply(account, merchant, 200, "RON")
			require.NoError(t, err)
			got, err := engine.Apply(account, merchant, 400, "RON")
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSpendingThresholdConvertsSpendToRon(t *testing.T) {
	engine, account, graph := newTestEngine(t, domain.PlanStandard)
	graph.AddRate("EUR", "RON", 5)
	account.Currency = "EUR"
	merchant := &domain.Merchant{Name: "Zara", Category: "Clothes", Policy: domain.PolicySpendingThreshold}

	// 30 EUR -> 150 RON cumulative, first tier; cashback is paid on
	// the EUR amount.
	got, err := engine.Apply(account, merchant, 30, "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 150, account.Cashback.CumulativeSpendRon(), 1e-9)
	assert.InDelta(t, 0.001*30, got, 1e-9)
}

func TestSpendingThresholdFailsWithoutConversionPath(t *testing.T) {
	engine, account, _ := newTestEngine(t, domain.PlanStandard)
	account.Currency = "EUR"
	merchant := &domain.Merchant{Name: "Zara", Category: "Clothes", Policy: domain.PolicySpendingThreshold}

	_, err := engine.Apply(account, merchant, 30, "EUR")
	assert.ErrorIs(t, err, domain.ErrNoConversionPath)
}

func TestUnsupportedPolicy(t *testing.T) {
	engine, account, _ := newTestEngine(t, domain.PlanStandard)
	merchant := &domain.Merchant{Name: "Mystery", Category: "Food", Policy: "loyaltyPoints"}

	_, err := engine.Apply(account, merchant, 10, "RON")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCashbackPolicy)
}
