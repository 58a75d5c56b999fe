package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReplayMetrics covers one command replay run.
type ReplayMetrics struct {
	CommandsTotal prometheus.CounterVec

	SplitsCreatedTotal   prometheus.CounterVec
	SplitsSettledTotal   prometheus.Counter
	SplitsCancelledTotal prometheus.Counter
	SplitsLiveCount      prometheus.Gauge

	CashbackPaidTotal   prometheus.CounterVec
	CommissionTotal     prometheus.CounterVec
	LedgerEntriesTotal  prometheus.CounterVec
	ConversionMissTotal prometheus.Counter
}

func NewReplayMetrics() *ReplayMetrics {
	return &ReplayMetrics{
		CommandsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banking_commands_total",
				Help: "Replayed commands by command name and result",
			},
			[]string{"command", "result"},
		),

		SplitsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "split_requests_created_total",
				Help: "Created split payment requests by mode",
			},
			[]string{"mode"},
		),

		SplitsSettledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "split_requests_settled_total",
				Help: "Split requests settled after every participant accepted",
			},
		),

		SplitsCancelledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "split_requests_cancelled_total",
				Help: "Split requests cancelled by a rejection",
			},
		),

		SplitsLiveCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "split_requests_live",
				Help: "Split requests currently waiting on votes",
			},
		),

		CashbackPaidTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashback_paid_total",
				Help: "Cashback amount credited, by policy and currency",
			},
			[]string{"policy", "currency"},
		),

		CommissionTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_collected_total",
				Help: "Commission debited from accounts, by plan and currency",
			},
			[]string{"plan", "currency"},
		),

		LedgerEntriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entries_total",
				Help: "Ledger entries appended, by transaction type",
			},
			[]string{"type"},
		),

		ConversionMissTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "conversion_path_misses_total",
				Help: "Currency conversions that found no path in the rate graph",
			},
		),
	}
}
