package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/AndrewAltimit/sleeper-detect/internal/config"
	"github.com/AndrewAltimit/sleeper-detect/internal/introspect"
	"github.com/AndrewAltimit/sleeper-detect/internal/logging"
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

	loaded, err := store.LoadProbes()
	if err != nil {
		logger.Error("load probes", "error", err)
		os.Exit(1)
	}
	for _, p := range loaded {
		detector.AddProbe(p)
	}
	if len(loaded) == 0 {
		fmt.Fprintln(os.Stderr, "warning: probe bank is empty; run the trainer first")
	}

	fmt.Println("Deception scanner ready.")
	fmt.Printf("  DB: %s | Introspect: %s | Probes: %d\n", dbPath, addr, len(loaded))
	fmt.Println("Type text to scan ('probes', 'history', or 'quit'):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if line == "probes" {
			printProbes(detector.Probes())
			continue
		}
		if line == "history" {
			printHistory(store)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		result := detector.ScanForDeception(ctx, line)
		cancel()

		printScan(result)
		for _, det := range result.TriggeredProbes {
			if err := store.LogDetection(det); err != nil {
				logger.Error("log detection", "error", err)
			}
		}
	}
}

// #endregion main

// #region output
func printScan(r probe.ScanResult) {
	verdict := "clean"
	if r.IsDeceptive {
		verdict = "DECEPTIVE"
	}
	fmt.Printf("\n[%s] confidence=%.3f ensemble=%.3f\n", verdict, r.Confidence, r.EnsembleScore)

	layers := make([]int, 0, len(r.LayerScores))
	for l := range r.LayerScores {
		layers = append(layers, l)
	}
	sort.Ints(layers)
	for _, l := range layers {
		fmt.Printf("  layer %-3d %.3f\n", l, r.LayerScores[l])
	}
	for _, det := range r.TriggeredProbes {
		fmt.Printf("  triggered %s (%.3f)\n", det.ProbeID, det.Confidence)
	}
	fmt.Println()
}

func printProbes(probes []probe.Probe) {
	fmt.Printf("%-32s  %5s  %6s  %9s  %6s  %s\n",
		"Probe", "Layer", "AUC", "Threshold", "Hits", "Active")
	for _, p := range probes {
		fmt.Printf("%-32s  %5d  %.4f  %9.4f  %6d  %v\n",
			p.ProbeID, p.Layer, p.AUCScore, p.Threshold, p.DetectionCount, p.IsActive)
	}
}

func printHistory(store *probestore.Store) {
	dets, err := store.ListDetections(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		return
	}
	for _, d := range dets {
		fmt.Printf("%s  %-32s  %.3f  detected=%v\n",
			d.Timestamp.Format("2006-01-02T15:04:05Z"), d.ProbeID, d.Confidence, d.Detected)
	}
}

// #endregion output

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
