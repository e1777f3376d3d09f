package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/AndrewAltimit/sleeper-detect/internal/activations"
	"github.com/AndrewAltimit/sleeper-detect/internal/pairs"
	"github.com/AndrewAltimit/sleeper-detect/internal/probe"
)

// #region types
// Config bundles the knobs for one offline training run.
type Config struct {
	PairCount          int     `yaml:"pair_count" json:"pair_count"`
	ValidationFraction float64 `yaml:"validation_fraction" json:"validation_fraction"`
}

// DefaultConfig returns standard training-run parameters.
func DefaultConfig() Config {
	return Config{
		PairCount:          200,
		ValidationFraction: 0.2,
	}
}

// Summary captures aggregate stats from one training run.
type Summary struct {
	PairsRequested int
	PairsUsed      int
	PairsSkipped   int
	LayersTrained  []int
	ProbeCount     int
	LowConfidence  int
	// MeanHeldOutAUC averages per-layer probe AUC on the held-out slice.
	// Zero when the validation fraction leaves no held-out pairs.
	MeanHeldOutAUC float64
}

// #endregion types

// #region run
// Run drives the full offline pipeline: generate contrastive pairs, extract
// truthful/deceptive activations per configured layer, train the per-layer
// and ensemble deception probes, then score each per-layer probe on the
// held-out pair slice. Pairs whose extraction fails on either side are
// skipped with a logged warning; the run aborts only when no pair survives.
func Run(
	ctx context.Context,
	source activations.Source,
	detector *probe.Detector,
	generator *pairs.Generator,
	cfg Config,
	logger *slog.Logger,
) (Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if source == nil {
		return Summary{}, fmt.Errorf("pipeline run: no activation source")
	}

	all := generator.AllPairs(cfg.PairCount)
	summary := Summary{PairsRequested: cfg.PairCount}
	layers := detector.Config().EnsembleLayers

	clean := make(map[int][][]float32)
	deceptive := make(map[int][][]float32)

	for i, pair := range all {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("pipeline run: %w", err)
		}

		truthful, err := source.Extract(ctx, pair.Prompt+" "+pair.Truthful, layers)
		if err != nil {
			logger.Warn("skipping pair: truthful extraction failed", "pair", i, "error", err)
			summary.PairsSkipped++
			continue
		}
		lying, err := source.Extract(ctx, pair.Prompt+" "+pair.Deceptive, layers)
		if err != nil {
			logger.Warn("skipping pair: deceptive extraction failed", "pair", i, "error", err)
			summary.PairsSkipped++
			continue
		}

		// Keep the two sides paired: only layers present in both extractions
		// contribute, so clean and deceptive stay sample-aligned per layer.
		for _, layer := range layers {
			tv, okT := truthful[layer]
			dv, okD := lying[layer]
			if !okT || !okD {
				continue
			}
			clean[layer] = append(clean[layer], tv)
			deceptive[layer] = append(deceptive[layer], dv)
		}
		summary.PairsUsed++
	}

	if summary.PairsUsed == 0 {
		return summary, fmt.Errorf("pipeline run: no pair yielded activations")
	}

	trainClean, valClean := splitByLayer(clean, cfg.ValidationFraction)
	trainDeceptive, valDeceptive := splitByLayer(deceptive, cfg.ValidationFraction)

	trained, err := detector.TrainDeceptionProbes(ctx, trainClean, trainDeceptive)
	if err != nil {
		return summary, fmt.Errorf("pipeline run: %w", err)
	}
	summary.ProbeCount = len(trained)

	var aucSum float64
	var aucCount int
	for _, p := range trained {
		if p.LowConfidence {
			summary.LowConfidence++
		}
		if p.Layer >= 0 {
			summary.LayersTrained = append(summary.LayersTrained, p.Layer)
		}

		vc, vd := valClean[p.Layer], valDeceptive[p.Layer]
		if p.Layer < 0 || len(vc) == 0 || len(vd) == 0 {
			continue
		}
		set := activations.Stack(vd, vc)
		vm, err := detector.ValidateProbe(p.ProbeID, set.X, set.Y)
		if err != nil {
			logger.Warn("held-out validation failed", "probe_id", p.ProbeID, "error", err)
			continue
		}
		aucSum += vm.AUC
		aucCount++
	}
	if aucCount > 0 {
		summary.MeanHeldOutAUC = aucSum / float64(aucCount)
	}

	sort.Ints(summary.LayersTrained)

	logger.Info("training run complete",
		"pairs_used", summary.PairsUsed,
		"pairs_skipped", summary.PairsSkipped,
		"probes", summary.ProbeCount,
		"mean_heldout_auc", summary.MeanHeldOutAUC)

	return summary, nil
}

// splitByLayer holds out the trailing fraction of each layer's rows. Pairs
// were appended in generation order, so the same pairs land in the held-out
// slice on both the clean and deceptive sides.
func splitByLayer(byLayer map[int][][]float32, fraction float64) (train, val map[int][][]float32) {
	train = make(map[int][][]float32, len(byLayer))
	val = make(map[int][][]float32, len(byLayer))
	for layer, rows := range byLayer {
		nVal := int(float64(len(rows)) * fraction)
		if nVal >= len(rows) {
			nVal = len(rows) - 1
		}
		if nVal < 0 {
			nVal = 0
		}
		cut := len(rows) - nVal
		train[layer] = rows[:cut]
		if nVal > 0 {
			val[layer] = rows[cut:]
		}
	}
	return train, val
}

// #endregion run
