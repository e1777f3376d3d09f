package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/AndrewAltimit/sleeper-detect/internal/pairs"
	"github.com/AndrewAltimit/sleeper-detect/internal/probe"
)

// #region fake-source
// fakeSource returns well-separated clusters: deceptive-completion texts land
// around +1 per dimension, truthful ones around -1, with a small
// deterministic per-call drift so rows are not identical.
type fakeSource struct {
	deceptive map[string]bool
	layers    []int
	calls     int
	failEvery int // when > 0, every Nth call errors
}

func newFakeSource(g *pairs.Generator, n int, layers []int) *fakeSource {
	dec := make(map[string]bool)
	for _, p := range g.AllPairs(n) {
		dec[p.Prompt+" "+p.Deceptive] = true
	}
	return &fakeSource{deceptive: dec, layers: layers}
}

func (f *fakeSource) Extract(_ context.Context, text string, layers []int) (map[int][]float32, error) {
	f.calls++
	if f.failEvery > 0 && f.calls%f.failEvery == 0 {
		return nil, errors.New("runtime unavailable")
	}

	center := float32(-1)
	if f.deceptive[text] {
		center = 1
	}
	drift := float32(f.calls%7) * 0.01

	out := make(map[int][]float32, len(f.layers))
	for _, layer := range f.layers {
		out[layer] = []float32{center + drift, center - drift, center}
	}
	return out, nil
}

// #endregion fake-source

// #region run-tests
func TestRun_TrainsProbesWithHeldOutAUC(t *testing.T) {
	g := pairs.NewGenerator()
	cfg := Config{PairCount: 40, ValidationFraction: 0.25}

	probeCfg := probe.DefaultConfig()
	probeCfg.EnsembleLayers = []int{4, 8}
	detector := probe.NewDetector(probeCfg)

	src := newFakeSource(g, cfg.PairCount, probeCfg.EnsembleLayers)

	summary, err := Run(context.Background(), src, detector, g, cfg, discard())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.PairsUsed != 40 {
		t.Errorf("expected all 40 pairs used, got %d", summary.PairsUsed)
	}
	// 2 per-layer probes + 1 ensemble probe.
	if summary.ProbeCount != 3 {
		t.Errorf("expected 3 probes, got %d", summary.ProbeCount)
	}
	if len(summary.LayersTrained) != 2 || summary.LayersTrained[0] != 4 || summary.LayersTrained[1] != 8 {
		t.Errorf("expected layers [4 8], got %v", summary.LayersTrained)
	}
	// The clusters are linearly separable; held-out AUC must be near perfect.
	if summary.MeanHeldOutAUC < 0.95 {
		t.Errorf("expected held-out AUC > 0.95 on separable clusters, got %f", summary.MeanHeldOutAUC)
	}
}

func TestRun_SkipsFailedPairs(t *testing.T) {
	g := pairs.NewGenerator()
	cfg := Config{PairCount: 30, ValidationFraction: 0}

	probeCfg := probe.DefaultConfig()
	probeCfg.EnsembleLayers = []int{4}
	detector := probe.NewDetector(probeCfg)

	src := newFakeSource(g, cfg.PairCount, probeCfg.EnsembleLayers)
	src.failEvery = 5

	summary, err := Run(context.Background(), src, detector, g, cfg, discard())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.PairsSkipped == 0 {
		t.Error("expected some pairs skipped on extraction failure")
	}
	if summary.PairsUsed+summary.PairsSkipped != 30 {
		t.Errorf("used+skipped should equal requested: %d + %d != 30",
			summary.PairsUsed, summary.PairsSkipped)
	}
	if summary.ProbeCount == 0 {
		t.Error("expected probes trained from surviving pairs")
	}
}

func TestRun_NoSource(t *testing.T) {
	g := pairs.NewGenerator()
	detector := probe.NewDetector(probe.DefaultConfig())
	_, err := Run(context.Background(), nil, detector, g, DefaultConfig(), discard())
	if err == nil {
		t.Fatal("expected error without an activation source")
	}
	if !strings.Contains(err.Error(), "no activation source") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	g := pairs.NewGenerator()
	probeCfg := probe.DefaultConfig()
	probeCfg.EnsembleLayers = []int{4}
	detector := probe.NewDetector(probeCfg)
	src := newFakeSource(g, 10, probeCfg.EnsembleLayers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, src, detector, g, Config{PairCount: 10}, discard())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// #endregion run-tests

// #region split-tests
func TestSplitByLayer(t *testing.T) {
	rows := make([][]float32, 10)
	for i := range rows {
		rows[i] = []float32{float32(i)}
	}
	train, val := splitByLayer(map[int][][]float32{4: rows}, 0.2)
	if len(train[4]) != 8 || len(val[4]) != 2 {
		t.Fatalf("expected 8/2 split, got %d/%d", len(train[4]), len(val[4]))
	}
	// Held-out rows are the trailing ones.
	if val[4][0][0] != 8 {
		t.Errorf("expected first held-out row to be index 8, got %f", val[4][0][0])
	}

	// A full fraction still leaves one training row.
	train, val = splitByLayer(map[int][][]float32{4: rows[:2]}, 1.0)
	if len(train[4]) != 1 || len(val[4]) != 1 {
		t.Errorf("expected 1/1 split at fraction 1.0, got %d/%d", len(train[4]), len(val[4]))
	}
}

// #endregion split-tests

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
