package discovery

// #region semantic-categories
// Semantic categories assigned to discovered features.
const (
	CategorySpecificConcept = "specific_concept"
	CategoryDistributed     = "distributed_representation"
	CategoryHighImportance  = "high_importance"
	CategoryBackground      = "background_feature"
)

// #endregion semantic-categories

// #region feature
// Feature is one column (atom) of a learned dictionary, scored and labeled.
// Immutable once scored.
type Feature struct {
	FeatureID             int       `json:"feature_id"`
	Vector                []float32 `json:"vector"`
	ActivationStrength    float64   `json:"activation_strength"`
	InterpretabilityScore float64   `json:"interpretability_score"`
	SemanticCategory      string    `json:"semantic_category"`
	Description           string    `json:"description"`
	SuspiciousPatterns    []string  `json:"suspicious_patterns"`
	CorrelatedTokens      []string  `json:"correlated_tokens"`
	Layer                 int       `json:"layer"` // -1 when unknown
}

// #endregion feature

// #region config
// Config holds dictionary-learning hyperparameters and scoring thresholds.
type Config struct {
	NComponents               int     `yaml:"n_components" json:"n_components"`
	Alpha                     float64 `yaml:"alpha" json:"alpha"`
	BatchSize                 int     `yaml:"batch_size" json:"batch_size"`
	NIter                     int     `yaml:"n_iter" json:"n_iter"`
	InterpretabilityThreshold float64 `yaml:"interpretability_threshold" json:"interpretability_threshold"`
	MinActivationStrength     float64 `yaml:"min_activation_strength" json:"min_activation_strength"`
}

// DefaultConfig returns the standard discovery hyperparameters.
func DefaultConfig() Config {
	return Config{
		NComponents:               64,
		Alpha:                     1.0,
		BatchSize:                 32,
		NIter:                     200,
		InterpretabilityThreshold: 0.5,
		MinActivationStrength:     0.1,
	}
}

// #endregion config

// #region result
// InterpretabilityStats summarizes interpretability scores across a run.
// AboveHigh counts scores above 0.7, BelowLow counts scores below 0.3.
type InterpretabilityStats struct {
	Mean      float64 `json:"mean"`
	Max       float64 `json:"max"`
	Min       float64 `json:"min"`
	Std       float64 `json:"std"`
	AboveHigh int     `json:"above_high"`
	BelowLow  int     `json:"below_low"`
}

// Result is the structured summary of one discovery run.
type Result struct {
	NFeaturesDiscovered   int                   `json:"n_features_discovered"`
	Features              []Feature             `json:"features"`
	SuspiciousFeatures    []Feature             `json:"suspicious_features"`
	DeceptionFeatures     []Feature             `json:"deception_features"`
	DictionaryShape       [2]int                `json:"dictionary_shape"` // [atoms, dims]
	InterpretabilityStats InterpretabilityStats `json:"interpretability_stats"`
	UsedFallbackLearner   bool                  `json:"used_fallback_learner"`
	UsedFallbackCoder     bool                  `json:"used_fallback_coder"`
}

// #endregion result
