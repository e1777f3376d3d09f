package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/AndrewAltimit/sleeper-detect/internal/probe"
	"github.com/AndrewAltimit/sleeper-detect/internal/probestore"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to probes.db")
	last := flag.Int("last", 20, "show N most recent detections")
	detections := flag.Bool("detections", false, "show detection log instead of probes")
	feature := flag.String("feature", "", "filter probes by feature name")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/probes.db [--detections] [--last N] [--feature name] [--json]")
		os.Exit(2)
	}

	store, err := probestore.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *detections {
		err = runDetectionMode(store, *last, *jsonOut)
	} else {
		err = runProbeMode(store, *feature, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region probe-mode

func runProbeMode(store *probestore.Store, feature string, jsonOut bool) error {
	probes, err := store.LoadProbes()
	if err != nil {
		return err
	}

	var rows []*probe.Probe
	for _, p := range probes {
		if feature != "" && p.FeatureName != feature {
			continue
		}
		rows = append(rows, p)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no probes found")
		return nil
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-32s  %-14s  %5s  %6s  %9s  %6s  %6s  %-6s  %s\n",
		"Probe", "Feature", "Layer", "AUC", "Threshold", "TPR", "FPR", "Active", "Hits")
	for _, p := range rows {
		fmt.Printf("%-32s  %-14s  %5d  %.4f  %9.4f  %.4f  %.4f  %-6v  %d\n",
			p.ProbeID, p.FeatureName, p.Layer, p.AUCScore, p.Threshold,
			p.TruePositiveRate, p.FalsePositiveRate, p.IsActive, p.DetectionCount)
		if p.LowConfidence {
			fmt.Printf("%-32s  (low confidence: calibrated on training data)\n", "")
		}
	}
	return nil
}

// #endregion probe-mode

// #region detection-mode

func runDetectionMode(store *probestore.Store, last int, jsonOut bool) error {
	dets, err := store.ListDetections(last)
	if err != nil {
		return err
	}
	if len(dets) == 0 {
		fmt.Fprintln(os.Stderr, "no detections logged")
		return nil
	}

	if jsonOut {
		return printJSON(dets)
	}

	fmt.Printf("%-20s  %-32s  %10s  %8s  %5s\n",
		"Time", "Probe", "Confidence", "Detected", "Layer")
	for _, d := range dets {
		fmt.Printf("%-20s  %-32s  %10.4f  %8v  %5d\n",
			d.Timestamp.Format("2006-01-02T15:04:05Z"), d.ProbeID, d.Confidence, d.Detected, d.Layer)
	}
	return nil
}

// #endregion detection-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output
