package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/AndrewAltimit/sleeper-detect/internal/config"
	"github.com/AndrewAltimit/sleeper-detect/internal/discovery"
	"github.com/AndrewAltimit/sleeper-detect/internal/logging"
)

// #region fixture
// fixture is the on-disk input format: a batch of activation row vectors
// from one layer, with optional context texts for token correlation.
type fixture struct {
	Layer   int         `json:"layer"`
	Samples [][]float32 `json:"samples"`
	Context []string    `json:"context"`
}

func loadFixture(path string) (fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return f, nil
}

// #endregion fixture

// #region main
func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	fixturePath := flag.String("fixture", "", "path to activation fixture JSON")
	libraryPath := flag.String("out", "", "write feature library JSON to this path")
	jsonOut := flag.Bool("json", false, "print the full result as JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: discover --fixture activations.json [--out library.json] [--config cfg.yaml] [--json]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	fix, err := loadFixture(*fixturePath)
	if err != nil {
		logger.Error("load fixture", "error", err)
		os.Exit(1)
	}

	d := discovery.NewDiscoverer(cfg.Discovery, discovery.WithLogger(logger))
	result, err := d.DiscoverFeatures(fix.Samples, fix.Layer, fix.Context)
	if err != nil {
		logger.Error("discovery failed", "error", err)
		os.Exit(1)
	}

	if *jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Error("marshal result", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	} else {
		printSummary(result)
	}

	if *libraryPath != "" {
		if err := d.SaveFeatureLibrary(*libraryPath); err != nil {
			logger.Error("save feature library", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Feature library written to %s\n", *libraryPath)
	}
}

func printSummary(r discovery.Result) {
	fmt.Printf("Discovered %d features (dictionary %dx%d)\n",
		r.NFeaturesDiscovered, r.DictionaryShape[0], r.DictionaryShape[1])
	fmt.Printf("  suspicious: %d | deception-linked: %d\n",
		len(r.SuspiciousFeatures), len(r.DeceptionFeatures))
	s := r.InterpretabilityStats
	fmt.Printf("  interpretability: mean=%.3f min=%.3f max=%.3f std=%.3f (>0.7: %d, <0.3: %d)\n",
		s.Mean, s.Min, s.Max, s.Std, s.AboveHigh, s.BelowLow)
	if r.UsedFallbackLearner {
		fmt.Println("  note: dictionary learner fell back to PCA")
	}
	if r.UsedFallbackCoder {
		fmt.Println("  note: sparse coder fell back to raw projection")
	}
	for _, f := range r.DeceptionFeatures {
		fmt.Printf("  [%d] %s\n", f.FeatureID, f.Description)
	}
}

// #endregion main
