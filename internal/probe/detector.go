package probe

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/AndrewAltimit/sleeper-detect/internal/activations"
	"github.com/AndrewAltimit/sleeper-detect/internal/metrics"
	"github.com/AndrewAltimit/sleeper-detect/internal/numerics"
)

// #region detector
// Detector trains and serves linear probes over activation vectors.
// The probe map and detection history are guarded by a read-write mutex so
// live detection can run while a background retrain swaps probes in.
type Detector struct {
	config Config
	source activations.Source
	logger *slog.Logger

	mu      sync.RWMutex
	probes  map[string]*Probe
	history []Detection
}

// Option configures a Detector.
type Option func(*Detector)

// WithSource binds the model-introspection capability used by scans.
func WithSource(s activations.Source) Option {
	return func(d *Detector) { d.source = s }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) { d.logger = l }
}

// NewDetector creates a Detector with an empty probe bank.
func NewDetector(config Config, opts ...Option) *Detector {
	d := &Detector{
		config: config,
		probes: make(map[string]*Probe),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Config returns the detector configuration.
func (d *Detector) Config() Config {
	return d.config
}

// #endregion detector

// #region train-probe
// TrainProbe trains one linear probe on labeled positive/negative activation
// samples. When validation data is supplied, early stopping and threshold
// calibration use it; otherwise both fall back to the training data and the
// returned probe is flagged LowConfidence.
func (d *Detector) TrainProbe(
	ctx context.Context,
	featureName string,
	positive, negative [][]float32,
	layer int,
	description string,
	validation *activations.LabeledSet,
) (*Probe, error) {
	dim, err := activations.CheckPair(positive, negative)
	if err != nil {
		return nil, fmt.Errorf("train probe %q: %w", featureName, err)
	}
	if validation != nil {
		valDim, err := activations.CheckRows(validation.X)
		if err != nil {
			return nil, fmt.Errorf("train probe %q: validation: %w", featureName, err)
		}
		if valDim != dim {
			return nil, fmt.Errorf("train probe %q: validation has %d dims, training has %d", featureName, valDim, dim)
		}
	}

	train := activations.Stack(positive, negative)

	var scaler *numerics.StandardScaler
	trainX := train.X
	valX := [][]float32(nil)
	if validation != nil {
		valX = validation.X
	}
	if d.config.UseFeatureScaling {
		scaler = &numerics.StandardScaler{}
		if err := scaler.Fit(train.X); err != nil {
			return nil, fmt.Errorf("train probe %q: scaler: %w", featureName, err)
		}
		trainX = scaler.Transform(train.X)
		if valX != nil {
			valX = scaler.Transform(valX)
		}
	}

	classifier, lowConfAUC, err := d.fitClassifier(ctx, trainX, train.Y, valX, validationLabels(validation))
	if err != nil {
		return nil, fmt.Errorf("train probe %q: %w", featureName, err)
	}

	trainScores := scoreAll(classifier, trainX)

	// AUC: validation when supplied, else training scores (a known
	// lower-confidence estimate).
	auc := lowConfAUC
	if auc < 0 {
		if valX != nil {
			auc = metrics.AUC(scoreAll(classifier, valX), validation.Y)
		} else {
			auc = metrics.AUC(trainScores, train.Y)
		}
	}

	// Threshold calibration: validation when available, else training data.
	var threshold float64
	if valX != nil {
		threshold = d.findOptimalThreshold(scoreAll(classifier, valX), validation.Y)
	} else {
		threshold = d.findOptimalThreshold(trainScores, train.Y)
		d.logger.Warn("threshold calibrated on training data (low-confidence mode)",
			"feature", featureName, "layer", layer)
	}

	conf := metrics.ConfusionAt(trainScores, train.Y, threshold)

	p := &Probe{
		ProbeID:           d.probeID(featureName, layer),
		FeatureName:       featureName,
		Classifier:        classifier,
		Threshold:         threshold,
		AUCScore:          auc,
		TruePositiveRate:  conf.TPR(),
		FalsePositiveRate: conf.FPR(),
		Layer:             layer,
		Description:       description,
		IsActive:          true,
		Scaler:            scaler,
		LowConfidence:     validation == nil,
		Dim:               dim,
	}

	d.mu.Lock()
	d.probes[p.ProbeID] = p
	d.mu.Unlock()

	d.logger.Info("probe trained",
		"probe_id", p.ProbeID,
		"feature", featureName,
		"layer", layer,
		"auc", auc,
		"threshold", threshold,
		"low_confidence", p.LowConfidence)

	return p, nil
}

// probeID derives a stable human-facing key from feature name, layer, and a
// hash of the name. Under the Replace policy, retraining the same
// feature/layer yields the same ID and overwrites the prior probe.
func (d *Detector) probeID(featureName string, layer int) string {
	h := fnv.New32a()
	h.Write([]byte(featureName))
	base := fmt.Sprintf("%s_L%d_%04d", featureName, layer, h.Sum32()%10000)
	if d.config.OverwritePolicy == OverwriteVersionedAppend {
		return base + "_" + uuid.NewString()[:8]
	}
	return base
}

func validationLabels(v *activations.LabeledSet) []int {
	if v == nil {
		return nil
	}
	return v.Y
}

// #endregion train-probe

// #region fit-classifier
// fitClassifier trains the logistic classifier, with early stopping against
// validation AUC when enabled. On training failure it degrades to the
// centroid fallback with the placeholder AUC 0.5 (returned as the second
// value; -1 means "compute AUC normally").
func (d *Detector) fitClassifier(
	ctx context.Context,
	x [][]float32, y []int,
	valX [][]float32, valY []int,
) (numerics.BinaryClassifier, float64, error) {
	cfg := numerics.DefaultLogisticConfig()
	if d.config.Regularization > 0 {
		cfg.C = 1.0 / d.config.Regularization
	}
	cfg.Penalty = d.config.Penalty
	cfg.MaxIter = d.config.MaxIter

	earlyStopping := d.config.UseEarlyStopping && valX != nil

	if !earlyStopping {
		lr := numerics.NewLogisticRegression(cfg)
		if err := lr.Fit(x, y); err != nil {
			return d.fallbackClassifier(x, y, err)
		}
		return lr, -1, nil
	}

	// Early stopping: refit with increasing iteration budgets in steps of
	// 100, keeping the classifier with the best-ever validation AUC. Plain
	// iteration-count tuning overfits small activation datasets.
	const step = 100
	const minDelta = 0.001
	patience := d.config.EarlyStoppingPatience
	if patience <= 0 {
		patience = 3
	}

	var best numerics.BinaryClassifier
	bestAUC := -1.0
	noImprove := 0

	for budget := step; ; budget += step {
		if err := ctx.Err(); err != nil {
			return nil, 0, fmt.Errorf("early stopping interrupted: %w", err)
		}

		roundCfg := cfg
		roundCfg.MaxIter = budget
		lr := numerics.NewLogisticRegression(roundCfg)
		if err := lr.Fit(x, y); err != nil {
			if best != nil {
				break // keep the best classifier found so far
			}
			return d.fallbackClassifier(x, y, err)
		}

		auc := metrics.AUC(scoreAll(lr, valX), valY)
		if auc > bestAUC+minDelta {
			bestAUC = auc
			best = lr
			noImprove = 0
		} else {
			noImprove++
			if best == nil {
				bestAUC = auc
				best = lr
			}
			if noImprove >= patience {
				break
			}
		}
	}

	return best, -1, nil
}

// fallbackClassifier degrades to the centroid scorer with placeholder AUC.
func (d *Detector) fallbackClassifier(x [][]float32, y []int, cause error) (numerics.BinaryClassifier, float64, error) {
	d.logger.Warn("classifier training failed, using centroid fallback",
		"fallback", "centroid", "error", cause)
	c := &numerics.CentroidClassifier{}
	if err := c.Fit(x, y); err != nil {
		return nil, 0, fmt.Errorf("centroid fallback: %w", err)
	}
	return c, 0.5, nil
}

func scoreAll(c numerics.BinaryClassifier, x [][]float32) []float64 {
	out := make([]float64, len(x))
	for i, row := range x {
		out[i] = c.PredictProba(row)
	}
	return out
}

// #endregion fit-classifier

// #region threshold
// findOptimalThreshold takes the F1-optimal threshold from the
// precision-recall curve, then enforces a conservative floor: at least the
// configured percentile of negative-class scores. The F1 optimum alone can
// admit too many false positives on a given negative slice; the floor
// trades recall for a controlled false-positive rate.
func (d *Detector) findOptimalThreshold(scores []float64, labels []int) float64 {
	best := metrics.BestF1Threshold(scores, labels)

	var negScores []float64
	for i, s := range scores {
		if labels[i] == 0 {
			negScores = append(negScores, s)
		}
	}
	if len(negScores) == 0 || d.config.ThresholdPercentile <= 0 {
		return best
	}
	floor := metrics.Percentile(negScores, d.config.ThresholdPercentile)
	if floor > best {
		return floor
	}
	return best
}

// #endregion threshold

// #region train-deception
// TrainDeceptionProbes trains one per-layer "is_deceptive" probe for every
// configured ensemble layer present in both activation maps, plus one
// ensemble probe (layer -1) over horizontally concatenated vectors. The
// per-layer probes capture layer-local signal; the ensemble probe captures
// cross-layer joint structure no single layer exposes alone.
func (d *Detector) TrainDeceptionProbes(
	ctx context.Context,
	clean, deceptive map[int][][]float32,
) (map[string]*Probe, error) {
	trained := make(map[string]*Probe)

	var presentLayers []int
	for _, layer := range d.config.EnsembleLayers {
		cleanRows, okClean := clean[layer]
		deceptiveRows, okDeceptive := deceptive[layer]
		if !okClean || !okDeceptive {
			d.logger.Warn("skipping layer missing from activation maps", "layer", layer)
			continue
		}
		presentLayers = append(presentLayers, layer)

		p, err := d.TrainProbe(ctx, "is_deceptive", deceptiveRows, cleanRows, layer,
			fmt.Sprintf("deception probe for layer %d", layer), nil)
		if err != nil {
			return trained, fmt.Errorf("layer %d: %w", layer, err)
		}
		trained[p.ProbeID] = p
	}

	if len(presentLayers) == 0 {
		return trained, fmt.Errorf("no configured ensemble layer present in both activation maps")
	}

	cleanJoint, err := concatRows(clean, presentLayers)
	if err != nil {
		return trained, fmt.Errorf("ensemble clean: %w", err)
	}
	deceptiveJoint, err := concatRows(deceptive, presentLayers)
	if err != nil {
		return trained, fmt.Errorf("ensemble deceptive: %w", err)
	}

	ensemble, err := d.TrainProbe(ctx, "is_deceptive", deceptiveJoint, cleanJoint, -1,
		fmt.Sprintf("cross-layer ensemble over layers %v", presentLayers), nil)
	if err != nil {
		return trained, fmt.Errorf("ensemble: %w", err)
	}
	trained[ensemble.ProbeID] = ensemble

	return trained, nil
}

// concatRows builds per-sample horizontally concatenated vectors across the
// given layers. All layers must carry the same sample count.
func concatRows(byLayer map[int][][]float32, layers []int) ([][]float32, error) {
	n := -1
	for _, layer := range layers {
		if n == -1 {
			n = len(byLayer[layer])
		} else if len(byLayer[layer]) != n {
			return nil, fmt.Errorf("layer %d has %d samples, expected %d", layer, len(byLayer[layer]), n)
		}
	}
	if n <= 0 {
		return nil, fmt.Errorf("no samples to concatenate")
	}
	out := make([][]float32, n)
	for i := 0; i < n; i++ {
		var row []float32
		for _, layer := range layers {
			row = append(row, byLayer[layer][i]...)
		}
		out[i] = row
	}
	return out, nil
}

// #endregion train-deception
