package probe

import (
	"time"

	"github.com/AndrewAltimit/sleeper-detect/internal/numerics"
)

// #region overwrite-policy
// OverwritePolicy controls what happens when a feature/layer pair is
// retrained: Replace keeps "latest wins" semantics (the retrained probe
// takes the same ID), VersionedAppend gives the new probe a unique ID so
// both remain in the bank.
type OverwritePolicy string

const (
	OverwriteReplace         OverwritePolicy = "replace"
	OverwriteVersionedAppend OverwritePolicy = "versioned_append"
)

// #endregion overwrite-policy

// #region probe
// Probe is a trained binary classifier bound to one feature name and one
// layer (-1 for the cross-layer ensemble). Structurally immutable after
// training; only DetectionCount and IsActive change. The opaque Classifier
// and Scaler are excluded from the serialized form.
type Probe struct {
	ProbeID           string                    `json:"probe_id"`
	FeatureName       string                    `json:"feature_name"`
	Classifier        numerics.BinaryClassifier `json:"-"`
	Threshold         float64                   `json:"threshold"`
	AUCScore          float64                   `json:"auc_score"`
	TruePositiveRate  float64                   `json:"true_positive_rate"`
	FalsePositiveRate float64                   `json:"false_positive_rate"`
	Layer             int                       `json:"layer"`
	Description       string                    `json:"description"`
	IsActive          bool                      `json:"is_active"`
	DetectionCount    int64                     `json:"detection_count"`
	Scaler            *numerics.StandardScaler  `json:"-"`

	// LowConfidence marks probes whose AUC and threshold were computed on
	// training data because no validation split was supplied.
	LowConfidence bool `json:"low_confidence"`

	// Dim is the expected activation dimensionality, used to skip probes
	// that cannot score a given input.
	Dim int `json:"-"`
}

// #endregion probe

// #region detection
// Detection is the immutable result record of one inference call.
type Detection struct {
	ProbeID     string    `json:"probe_id"`
	FeatureName string    `json:"feature_name"`
	Confidence  float64   `json:"confidence"`
	Detected    bool      `json:"detected"`
	Layer       int       `json:"layer"`
	RawScore    float64   `json:"raw_score"`
	Timestamp   time.Time `json:"timestamp"`
}

// #endregion detection

// #region config
// Config holds training and detection parameters for the probe bank.
type Config struct {
	Regularization        float64         `yaml:"regularization" json:"regularization"` // classifier C = 1/this
	Penalty               string          `yaml:"penalty" json:"penalty"`               // "l1" | "l2"
	MaxIter               int             `yaml:"max_iter" json:"max_iter"`
	UseEarlyStopping      bool            `yaml:"use_early_stopping" json:"use_early_stopping"`
	EarlyStoppingPatience int             `yaml:"early_stopping_patience" json:"early_stopping_patience"`
	EnsembleLayers        []int           `yaml:"ensemble_layers" json:"ensemble_layers"`
	UseFeatureScaling     bool            `yaml:"use_feature_scaling" json:"use_feature_scaling"`
	ThresholdPercentile   float64         `yaml:"threshold_percentile" json:"threshold_percentile"`
	OverwritePolicy       OverwritePolicy `yaml:"overwrite_policy" json:"overwrite_policy"`
}

// DefaultConfig returns the standard probe-bank parameters. Feature scaling
// stays off: combined with early stopping it destabilizes training on small
// activation datasets.
func DefaultConfig() Config {
	return Config{
		Regularization:        1.0,
		Penalty:               "l2",
		MaxIter:               1000,
		UseEarlyStopping:      true,
		EarlyStoppingPatience: 3,
		EnsembleLayers:        []int{4, 8, 12, 16},
		UseFeatureScaling:     false,
		ThresholdPercentile:   90,
		OverwritePolicy:       OverwriteReplace,
	}
}

// #endregion config

// #region scan-result
// ScanResult is the aggregated deception verdict for one scanned text.
type ScanResult struct {
	IsDeceptive     bool            `json:"is_deceptive"`
	Confidence      float64         `json:"confidence"`      // max per-layer confidence
	EnsembleScore   float64         `json:"ensemble_score"`  // mean of per-layer max confidences
	LayerScores     map[int]float64 `json:"layer_scores"`    // max deception confidence per layer
	TriggeredProbes []Detection     `json:"triggered_probes"`
}

// #endregion scan-result

// #region validation-metrics
// ValidationMetrics reports held-out performance at a probe's stored
// threshold.
type ValidationMetrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	AUC       float64 `json:"auc"`
}

// #endregion validation-metrics
