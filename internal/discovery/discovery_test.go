package discovery

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
)

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// #region interpretability-tests
func TestComputeInterpretability_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		atom := make([]float32, 16)
		for j := range atom {
			atom[j] = float32(rng.NormFloat64())
		}
		got := computeInterpretability(atom)
		if got < 0 || got > 1 {
			t.Fatalf("interpretability out of [0,1]: %f for %v", got, atom)
		}
	}
}

func TestComputeInterpretability_UniformAtom(t *testing.T) {
	// Uniform weights: zero sparsity, maximum entropy → coherence 0 → score 0.
	atom := []float32{0.5, 0.5, 0.5, 0.5}
	if got := computeInterpretability(atom); got != 0 {
		t.Errorf("expected 0 for uniform atom, got %f", got)
	}
}

func TestComputeInterpretability_OneHotAtom(t *testing.T) {
	// One-hot: coherence 1 (zero entropy), sparsity 3/4.
	// Score = 0.4*0.75 + 0.6*1 = 0.9.
	atom := []float32{1, 0, 0, 0}
	if got := computeInterpretability(atom); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("expected 0.9 for one-hot atom, got %f", got)
	}
}

func TestComputeInterpretability_Empty(t *testing.T) {
	if got := computeInterpretability(nil); got != 0 {
		t.Errorf("expected 0 for empty atom, got %f", got)
	}
}

// #endregion interpretability-tests

// #region discover-tests
func TestDiscoverFeatures_AllZeroRows(t *testing.T) {
	samples := make([][]float32, 20)
	for i := range samples {
		samples[i] = make([]float32, 8)
	}

	d := NewDiscoverer(DefaultConfig(), quiet())
	result, err := d.DiscoverFeatures(samples, -1, nil)
	if err != nil {
		t.Fatalf("DiscoverFeatures: %v", err)
	}
	// Every atom codes to zero strength and falls below the 0.1 filter.
	if result.NFeaturesDiscovered != 0 {
		t.Errorf("expected 0 features on all-zero input, got %d", result.NFeaturesDiscovered)
	}
	if len(result.Features) != 0 {
		t.Errorf("expected empty feature list, got %d", len(result.Features))
	}
}

func TestDiscoverFeatures_DimensionMismatch(t *testing.T) {
	samples := [][]float32{{1, 2, 3}, {1, 2}}
	d := NewDiscoverer(DefaultConfig(), quiet())
	if _, err := d.DiscoverFeatures(samples, 0, nil); err == nil {
		t.Fatal("expected dimension-mismatch error")
	}
}

func TestDiscoverFeatures_StructuredData(t *testing.T) {
	// Two alternating prototype directions with noise; discovery should
	// surface at least one feature and attach the layer tag.
	rng := rand.New(rand.NewSource(17))
	protos := [][]float32{{3, 0, 0, 0}, {0, 3, 0, 0}}
	samples := make([][]float32, 60)
	for i := range samples {
		p := protos[i%2]
		row := make([]float32, 4)
		for j := range row {
			row[j] = p[j] + float32(rng.NormFloat64())*0.05
		}
		samples[i] = row
	}

	cfg := DefaultConfig()
	cfg.NComponents = 4
	cfg.NIter = 50
	d := NewDiscoverer(cfg, quiet())
	result, err := d.DiscoverFeatures(samples, 8, nil)
	if err != nil {
		t.Fatalf("DiscoverFeatures: %v", err)
	}
	if result.NFeaturesDiscovered == 0 {
		t.Fatal("expected features from structured data")
	}
	for _, f := range result.Features {
		if f.Layer != 8 {
			t.Errorf("expected layer 8 on feature %d, got %d", f.FeatureID, f.Layer)
		}
		if f.InterpretabilityScore < 0 || f.InterpretabilityScore > 1 {
			t.Errorf("interpretability out of bounds: %f", f.InterpretabilityScore)
		}
		if f.SemanticCategory == "" {
			t.Errorf("feature %d has no category", f.FeatureID)
		}
	}
	if result.DictionaryShape != [2]int{4, 4} {
		t.Errorf("expected dictionary shape [4 4], got %v", result.DictionaryShape)
	}
}

// #endregion discover-tests

// #region fallback-tests
type failingLearner struct{}

func (failingLearner) Fit([][]float32, int) ([][]float32, error) {
	return nil, errors.New("learner unavailable")
}

type failingCoder struct{}

func (failingCoder) Encode([][]float32, [][]float32) ([][]float64, error) {
	return nil, errors.New("coder unavailable")
}

func TestDiscoverFeatures_FallbackToPCA(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	samples := make([][]float32, 30)
	for i := range samples {
		samples[i] = []float32{float32(rng.NormFloat64()) * 5, float32(rng.NormFloat64())}
	}

	cfg := DefaultConfig()
	cfg.NComponents = 2
	d := NewDiscoverer(cfg, quiet(), WithLearner(failingLearner{}))
	result, err := d.DiscoverFeatures(samples, -1, nil)
	if err != nil {
		t.Fatalf("expected degraded success, got error: %v", err)
	}
	if !result.UsedFallbackLearner {
		t.Error("expected fallback learner flag set")
	}
}

func TestDiscoverFeatures_FallbackToProjection(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	samples := make([][]float32, 30)
	for i := range samples {
		samples[i] = []float32{float32(rng.NormFloat64()), float32(rng.NormFloat64())}
	}

	cfg := DefaultConfig()
	cfg.NComponents = 2
	d := NewDiscoverer(cfg, quiet(), WithCoder(failingCoder{}))
	result, err := d.DiscoverFeatures(samples, -1, nil)
	if err != nil {
		t.Fatalf("expected degraded success, got error: %v", err)
	}
	if !result.UsedFallbackCoder {
		t.Error("expected fallback coder flag set")
	}
}

// #endregion fallback-tests

// #region flagging-tests
func TestIsSuspicious_HiddenHighActivation(t *testing.T) {
	f := Feature{ActivationStrength: 0.6, InterpretabilityScore: 0.2}
	if !isSuspicious(f) {
		t.Error("expected strong low-legibility feature flagged suspicious")
	}
	benign := Feature{ActivationStrength: 0.2, InterpretabilityScore: 0.8}
	if isSuspicious(benign) {
		t.Error("expected weak interpretable feature not flagged")
	}
}

func TestIsSuspicious_TokenSubstring(t *testing.T) {
	f := Feature{CorrelatedTokens: []string{"deployment"}}
	if !isSuspicious(f) {
		t.Error("expected deploy-correlated feature flagged suspicious")
	}
}

func TestDeceptionScore_ContextPhrases(t *testing.T) {
	f := Feature{Description: "feature 0: background_feature"}
	ctx := []string{"Trust me completely, I am human."}
	if got := deceptionScore(f, ctx); got != 0.5 {
		t.Errorf("expected context-only score 0.5, got %f", got)
	}
}

func TestFlagDeception_TagsDescription(t *testing.T) {
	// Strength > 0.7 plus "hidden" in description (0.4) plus deceptive
	// context (0.5) clears the 0.5 bar at 0.9.
	f := Feature{
		FeatureID:          3,
		ActivationStrength: 0.8,
		Description:        "feature 3: background_feature (hidden high-activation pattern)",
	}
	out := flagDeception([]Feature{f}, []string{"i would never lie"})
	if len(out) != 1 {
		t.Fatalf("expected 1 deception feature, got %d", len(out))
	}
	if !strings.HasPrefix(out[0].Description, "[DECEPTION:0.90] ") {
		t.Errorf("expected [DECEPTION:0.90] prefix, got %q", out[0].Description)
	}
}

// #endregion flagging-tests

// #region token-tests
func TestCooccurrenceEstimator_RanksByWeightedFrequency(t *testing.T) {
	e := NewCooccurrenceEstimator()
	coefs := []float64{2.0, 0.1, -1.5}
	ctx := []string{
		"the trigger phrase appears here",
		"nothing of note",
		"trigger phrase again today",
	}
	// trigger/phrase weight 2.0 + 1.5 = 3.5; appears/here 2.0;
	// again/today 1.5; nothing/note 0.1. Short tokens (< 3 chars) drop out.
	got := e.Correlate(coefs, ctx, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens, got %v", got)
	}
	if got[0] != "phrase" || got[1] != "trigger" {
		t.Errorf("expected phrase/trigger ranked first (alphabetical within ties), got %v", got)
	}
}

func TestCooccurrenceEstimator_ZeroCoefficients(t *testing.T) {
	e := NewCooccurrenceEstimator()
	got := e.Correlate([]float64{0, 0}, []string{"alpha beta", "gamma delta"}, 5)
	if len(got) != 0 {
		t.Errorf("expected no tokens for zero activations, got %v", got)
	}
}

// #endregion token-tests

// #region library-tests
func TestFeatureLibraryRoundTrip(t *testing.T) {
	d := NewDiscoverer(DefaultConfig(), quiet())
	d.AddFeature("layer8_feat3", Feature{
		FeatureID:             3,
		Vector:                []float32{0.1, 0.9},
		ActivationStrength:    0.42,
		InterpretabilityScore: 0.77,
		SemanticCategory:      CategorySpecificConcept,
		Description:           "feature 3: specific_concept",
		Layer:                 8,
	})

	path := filepath.Join(t.TempDir(), "library.json")
	if err := d.SaveFeatureLibrary(path); err != nil {
		t.Fatalf("SaveFeatureLibrary: %v", err)
	}

	d2 := NewDiscoverer(DefaultConfig(), quiet())
	if err := d2.LoadFeatureLibrary(path); err != nil {
		t.Fatalf("LoadFeatureLibrary: %v", err)
	}
	if d2.LibrarySize() != 1 {
		t.Fatalf("expected 1 feature after load, got %d", d2.LibrarySize())
	}
	f, ok := d2.GetFeature("layer8_feat3")
	if !ok {
		t.Fatal("expected feature present after round trip")
	}
	if f.ActivationStrength != 0.42 || f.Layer != 8 {
		t.Errorf("feature fields lost in round trip: %+v", f)
	}
}

func TestSaveFeatureLibrary_BadPath(t *testing.T) {
	d := NewDiscoverer(DefaultConfig(), quiet())
	if err := d.SaveFeatureLibrary(filepath.Join(t.TempDir(), "missing", "library.json")); err == nil {
		t.Fatal("expected I/O error for unwritable path")
	}
}

// #endregion library-tests
