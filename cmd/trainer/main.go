package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/AndrewAltimit/sleeper-detect/internal/config"
	"github.com/AndrewAltimit/sleeper-detect/internal/introspect"
	"github.com/AndrewAltimit/sleeper-detect/internal/logging"
	"github.com/AndrewAltimit/sleeper-detect/internal/pairs"
	"github.com/AndrewAltimit/sleeper-detect/internal/pipeline"
	"github.com/AndrewAltimit/sleeper-detect/internal/probe"
	"github.com/AndrewAltimit/sleeper-detect/internal/probestore"
)

// #region main
func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	addr := envOr("INTROSPECT_ADDR", cfg.IntrospectAddr)
	dbPath := envOr("PROBES_DB", cfg.DBPath)

	logger, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := probestore.NewStore(dbPath)
	if err != nil {
		logger.Error("open probe store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	client, err := introspect.NewClient(addr)
	if err != nil {
		logger.Error("connect introspection service", "addr", addr, "error", err)
		os.Exit(1)
	}
	defer client.Close()

	detector := probe.NewDetector(cfg.Probe, probe.WithSource(client), probe.WithLogger(logger))
	generator := pairs.NewGenerator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("training run starting",
		"introspect", addr, "db", dbPath,
		"pairs", cfg.Pipeline.PairCount, "layers", cfg.Probe.EnsembleLayers)

	summary, err := pipeline.Run(ctx, client, detector, generator, cfg.Pipeline, logger)
	if err != nil {
		logger.Error("training run failed", "error", err)
		os.Exit(1)
	}

	saved := 0
	for _, p := range detector.Probes() {
		rec := p
		if err := store.SaveProbe(&rec); err != nil {
			logger.Error("save probe", "probe_id", p.ProbeID, "error", err)
			continue
		}
		saved++
	}

	fmt.Printf("Trained %d probes over layers %v (%d pairs used, %d skipped).\n",
		summary.ProbeCount, summary.LayersTrained, summary.PairsUsed, summary.PairsSkipped)
	fmt.Printf("Mean held-out AUC: %.4f | low-confidence probes: %d | saved: %d\n",
		summary.MeanHeldOutAUC, summary.LowConfidence, saved)
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
