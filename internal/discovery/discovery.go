package discovery

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/AndrewAltimit/sleeper-detect/internal/activations"
	"github.com/AndrewAltimit/sleeper-detect/internal/numerics"
)

// #region discoverer
// Discoverer decomposes activation batches into a sparse, semantically
// labeled dictionary and flags atoms whose pattern correlates with
// suspicious or deceptive semantics.
//
// Backends are injected at construction: the sparse learner/coder are the
// defaults, and PCA/raw-projection fallbacks take over on failure with a
// logged warning, never an error (degraded-but-continues).
type Discoverer struct {
	config   Config
	learner  numerics.DictionaryLearner
	coder    numerics.SparseCoder
	fallback numerics.DictionaryLearner
	rawCoder numerics.SparseCoder
	tokens   TokenCorrelationEstimator
	logger   *slog.Logger

	mu         sync.RWMutex
	library    map[string]Feature
	dictionary [][]float32
	suspicious []Feature
	deception  []Feature
}

// Option configures a Discoverer.
type Option func(*Discoverer)

// WithLearner overrides the default sparse dictionary learner.
func WithLearner(l numerics.DictionaryLearner) Option {
	return func(d *Discoverer) { d.learner = l }
}

// WithCoder overrides the default sparse coder.
func WithCoder(c numerics.SparseCoder) Option {
	return func(d *Discoverer) { d.coder = c }
}

// WithTokenEstimator overrides the default token-correlation estimator.
func WithTokenEstimator(t TokenCorrelationEstimator) Option {
	return func(d *Discoverer) { d.tokens = t }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Discoverer) { d.logger = l }
}

// NewDiscoverer creates a Discoverer with default numerics backends.
func NewDiscoverer(config Config, opts ...Option) *Discoverer {
	dictCfg := numerics.DictionaryConfig{
		Alpha:     config.Alpha,
		BatchSize: config.BatchSize,
		NIter:     config.NIter,
		Seed:      42,
	}
	d := &Discoverer{
		config:   config,
		learner:  numerics.NewMiniBatchDictionaryLearner(dictCfg),
		coder:    &numerics.ISTACoder{Alpha: config.Alpha, NIter: 20},
		fallback: numerics.NewPCALearner(),
		rawCoder: numerics.ProjectionCoder{},
		tokens:   NewCooccurrenceEstimator(),
		library:  make(map[string]Feature),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Config returns the discovery configuration.
func (d *Discoverer) Config() Config {
	return d.config
}

// Dictionary returns the last-learned dictionary (atoms as rows).
func (d *Discoverer) Dictionary() [][]float32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dictionary
}

// #endregion discoverer

// #region discover
// DiscoverFeatures learns a dictionary over the sample matrix, extracts and
// scores surviving atoms, and flags suspicious/deception-related ones.
// layer is attached to every feature (-1 when unknown). contextData, when
// non-empty, must align row-for-row with samples and enables token
// correlation.
//
// Learner or coder failure degrades locally (PCA / raw projection) and is
// never surfaced as an error; only invalid input errors out.
func (d *Discoverer) DiscoverFeatures(samples [][]float32, layer int, contextData []string) (Result, error) {
	if _, err := activations.CheckRows(samples); err != nil {
		return Result{}, fmt.Errorf("discover features: %w", err)
	}

	var result Result

	dict, err := d.learner.Fit(samples, d.config.NComponents)
	if err != nil {
		d.logger.Warn("dictionary learning failed, falling back to PCA",
			"fallback", "pca", "error", err)
		result.UsedFallbackLearner = true
		dict, err = d.fallback.Fit(samples, d.config.NComponents)
		if err != nil {
			return Result{}, fmt.Errorf("pca fallback: %w", err)
		}
	}

	codes, err := d.coder.Encode(samples, dict)
	if err != nil {
		d.logger.Warn("sparse coding failed, falling back to raw projection",
			"fallback", "projection", "error", err)
		result.UsedFallbackCoder = true
		codes, err = d.rawCoder.Encode(samples, dict)
		if err != nil {
			return Result{}, fmt.Errorf("projection fallback: %w", err)
		}
	}

	features := make([]Feature, 0, len(dict))
	for k, atom := range dict {
		var sumAbs float64
		for i := range codes {
			sumAbs += math.Abs(codes[i][k])
		}
		strength := sumAbs / float64(len(codes))
		if strength < d.config.MinActivationStrength {
			continue
		}

		interp := computeInterpretability(atom)
		category := categorize(atom, strength, interp)
		description := describe(k, category, strength, interp)

		var correlated []string
		if len(contextData) > 0 {
			column := make([]float64, len(codes))
			for i := range codes {
				column[i] = codes[i][k]
			}
			correlated = d.tokens.Correlate(column, contextData, maxCorrelatedTokens)
		}

		f := Feature{
			FeatureID:             k,
			Vector:                atom,
			ActivationStrength:    strength,
			InterpretabilityScore: interp,
			SemanticCategory:      category,
			Description:           description,
			CorrelatedTokens:      correlated,
			Layer:                 layer,
		}
		f.SuspiciousPatterns = matchSuspiciousPatterns(f)
		features = append(features, f)
	}

	suspicious := flagSuspicious(features)
	deception := flagDeception(features, contextData)

	d.mu.Lock()
	d.dictionary = dict
	d.suspicious = suspicious
	d.deception = deception
	d.mu.Unlock()

	dims := 0
	if len(dict) > 0 {
		dims = len(dict[0])
	}
	result.NFeaturesDiscovered = len(features)
	result.Features = features
	result.SuspiciousFeatures = suspicious
	result.DeceptionFeatures = deception
	result.DictionaryShape = [2]int{len(dict), dims}
	result.InterpretabilityStats = summarizeInterpretability(features)

	d.logger.Info("feature discovery complete",
		"n_features", len(features),
		"n_suspicious", len(suspicious),
		"n_deception", len(deception),
		"fallback_learner", result.UsedFallbackLearner,
		"fallback_coder", result.UsedFallbackCoder)

	return result, nil
}

// #endregion discover

// #region interpret
// computeInterpretability scores an atom in [0,1]:
// 0.4 * sparsity + 0.6 * coherence, where sparsity is the fraction of
// near-zero weights and coherence is 1 - normalized entropy of the absolute
// weight distribution. A uniform atom scores coherence 0; a one-hot atom
// scores coherence 1.
func computeInterpretability(atom []float32) float64 {
	if len(atom) == 0 {
		return 0
	}

	const nearZero = 0.01
	var zeros int
	var sumAbs float64
	for _, w := range atom {
		a := math.Abs(float64(w))
		if a < nearZero {
			zeros++
		}
		sumAbs += a
	}
	sparsity := float64(zeros) / float64(len(atom))

	coherence := 0.0
	if sumAbs > 0 && len(atom) > 1 {
		var entropy float64
		for _, w := range atom {
			p := math.Abs(float64(w)) / sumAbs
			if p > 0 {
				entropy -= p * math.Log(p)
			}
		}
		normalized := entropy / math.Log(float64(len(atom)))
		coherence = 1.0 - normalized
		if coherence < 0 {
			coherence = 0
		}
	}

	score := 0.4*sparsity + 0.6*coherence
	if score > 1 {
		score = 1
	}
	return score
}

// categorize assigns a semantic category from magnitude/variance heuristics.
// Not ML-based.
func categorize(atom []float32, strength, interp float64) string {
	var mean float64
	for _, w := range atom {
		mean += math.Abs(float64(w))
	}
	mean /= float64(len(atom))
	var variance float64
	for _, w := range atom {
		d := math.Abs(float64(w)) - mean
		variance += d * d
	}
	variance /= float64(len(atom))

	switch {
	case interp > 0.7:
		return CategorySpecificConcept
	case strength > 0.7:
		return CategoryHighImportance
	case variance < 1e-4:
		return CategoryDistributed
	default:
		return CategoryBackground
	}
}

// describe generates the short human-readable description string.
func describe(id int, category string, strength, interp float64) string {
	base := fmt.Sprintf("feature %d: %s, activation strength %.2f, interpretability %.2f",
		id, category, strength, interp)
	if strength > 0.5 && interp < 0.3 {
		base += " (hidden high-activation pattern)"
	}
	return base
}

// summarizeInterpretability computes mean/max/min/std and the fixed
// 0.7 / 0.3 threshold counts.
func summarizeInterpretability(features []Feature) InterpretabilityStats {
	if len(features) == 0 {
		return InterpretabilityStats{}
	}
	stats := InterpretabilityStats{Min: 1.0}
	var sum float64
	for _, f := range features {
		v := f.InterpretabilityScore
		sum += v
		if v > stats.Max {
			stats.Max = v
		}
		if v < stats.Min {
			stats.Min = v
		}
		if v > 0.7 {
			stats.AboveHigh++
		}
		if v < 0.3 {
			stats.BelowLow++
		}
	}
	stats.Mean = sum / float64(len(features))
	var variance float64
	for _, f := range features {
		d := f.InterpretabilityScore - stats.Mean
		variance += d * d
	}
	stats.Std = math.Sqrt(variance / float64(len(features)))
	return stats
}

// #endregion interpret
