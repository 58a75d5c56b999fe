package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LavaJover/shvark-banking-sim/internal/config"
	"github.com/LavaJover/shvark-banking-sim/internal/delivery/replay"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/idgen"
	publisher "github.com/LavaJover/shvark-banking-sim/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/memstore"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/rates"
	"github.com/LavaJover/shvark-banking-sim/internal/usecase/account"
	"github.com/LavaJover/shvark-banking-sim/internal/usecase/cashback"
	"github.com/LavaJover/shvark-banking-sim/internal/usecase/payment"
	"github.com/LavaJover/shvark-banking-sim/internal/usecase/split"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	logger := mustInitLogger(cfg.LogConfig)

	// Init stores
	userStore := memstore.NewUserStore()
	accountStore := memstore.NewAccountStore()
	cardStore := memstore.NewCardStore()
	merchantStore := memstore.NewMerchantStore()
	aliasStore := memstore.NewAliasStore()
	ledger := memstore.NewLedger()
	splitStore := memstore.NewSplitStore()
	graph := rates.NewGraph()

	generator, err := idgen.NewGenerator()
	if err != nil {
		log.Fatalf("failed to init id generator: %v", err)
	}

	// Metrics are optional; the replay core takes nil when disabled.
	var replayMetrics *metrics.ReplayMetrics
	if cfg.MetricsServer.Enabled {
		replayMetrics = metrics.NewReplayMetrics()
		go func() {
			addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	var events replay.EventSink = publisher.NopPublisher{}
	if cfg.KafkaService.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		events = publisher.NewDefaultKafkaPublisher(brokers)
	}

	// Init usecases
	cashbackEngine := cashback.NewDefaultEngine(graph, userStore)
	accountUsecase := account.NewDefaultAccountUsecase(userStore, accountStore, cardStore, aliasStore, ledger, graph, generator)
	paymentUsecase := payment.NewDefaultPaymentUsecase(
		userStore,
		accountStore,
		cardStore,
		merchantStore,
		aliasStore,
		ledger,
		graph,
		cashbackEngine,
		generator,
		replayMetrics,
	)
	coordinator := split.NewDefaultCoordinator(accountStore, splitStore, ledger, graph)

	runner := replay.NewRunner(
		userStore,
		accountStore,
		cardStore,
		merchantStore,
		ledger,
		splitStore,
		graph,
		accountUsecase,
		paymentUsecase,
		coordinator,
		events,
		cfg.KafkaService.Topic,
		replayMetrics,
		logger,
	)

	input, err := replay.LoadInput(cfg.Replay.InputPath)
	if err != nil {
		log.Fatalf("failed to load replay input: %v", err)
	}

	output := runner.Run(input)

	if err := replay.WriteOutput(cfg.Replay.OutputPath, output); err != nil {
		log.Fatalf("failed to write replay output: %v", err)
	}
	logger.Info("replay output written", "path", cfg.Replay.OutputPath)
}

func mustInitLogger(cfg config.LogConfig) *slog.Logger {
	var out *os.File
	switch cfg.LogOutput {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		f, err := os.OpenFile(cfg.LogOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("failed to open log output: %v", err)
		}
		out = f
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}
