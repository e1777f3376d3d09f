package activations

import "context"

// #region sample
// Sample is one model-internal activation vector captured at a single layer
// for a single input. Never mutated after creation.
type Sample struct {
	Layer  int
	Vector []float32
}
// #endregion sample

// #region labeled-set
// LabeledSet pairs activation rows with binary labels (1 = positive/deceptive,
// 0 = negative/clean). Rows must share one dimensionality.
type LabeledSet struct {
	X [][]float32
	Y []int
}
// #endregion labeled-set

// #region source-interface
// Source abstracts the external model-introspection capability. Adapters
// implement it per underlying model runtime; the core never owns a model.
type Source interface {
	// Extract returns one mean-pooled activation vector per requested layer.
	// Layers the runtime cannot serve are absent from the result.
	Extract(ctx context.Context, text string, layers []int) (map[int][]float32, error)
}

// Tokenizer is an optional capability of a Source for token-level analysis.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]string, error)
}
// #endregion source-interface
