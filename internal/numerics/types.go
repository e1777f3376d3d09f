package numerics

// #region interfaces

// DictionaryLearner learns a set of atoms from a sample matrix.
// Implementations return a dictionary of nComponents rows, each row an atom
// with the same dimensionality as the input rows.
type DictionaryLearner interface {
	Fit(x [][]float32, nComponents int) ([][]float32, error)
}

// SparseCoder decomposes samples against a fixed dictionary, returning one
// coefficient row per sample (columns = atoms).
type SparseCoder interface {
	Encode(x [][]float32, dictionary [][]float32) ([][]float64, error)
}

// BinaryClassifier is a trainable two-class scorer over activation vectors.
type BinaryClassifier interface {
	Fit(x [][]float32, y []int) error
	// PredictProba returns the positive-class probability for one row.
	PredictProba(row []float32) float64
}

// #endregion interfaces

// #region logistic-config

// LogisticConfig holds training parameters for logistic regression.
type LogisticConfig struct {
	C            float64 // inverse regularization strength
	Penalty      string  // "l1" | "l2"
	MaxIter      int
	LearningRate float64
	Tol          float64 // stop when max gradient step falls below this
}

// DefaultLogisticConfig returns parameters matching the usual probe setup.
func DefaultLogisticConfig() LogisticConfig {
	return LogisticConfig{
		C:            1.0,
		Penalty:      "l2",
		MaxIter:      1000,
		LearningRate: 0.1,
		Tol:          1e-6,
	}
}

// #endregion logistic-config

// #region dictionary-config

// DictionaryConfig holds hyperparameters for online dictionary learning.
type DictionaryConfig struct {
	Alpha     float64 // sparsity penalty
	BatchSize int
	NIter     int
	Seed      int64
}

// DefaultDictionaryConfig returns the standard discovery hyperparameters.
func DefaultDictionaryConfig() DictionaryConfig {
	return DictionaryConfig{
		Alpha:     1.0,
		BatchSize: 32,
		NIter:     200,
		Seed:      42,
	}
}

// #endregion dictionary-config
