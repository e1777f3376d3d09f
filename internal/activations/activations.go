package activations

import "fmt"

// #region dimension-checks
// CheckRows verifies that every row in X has the same non-zero dimensionality.
// Returns the shared dimension.
func CheckRows(x [][]float32) (int, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("empty sample matrix")
	}
	dim := len(x[0])
	if dim == 0 {
		return 0, fmt.Errorf("zero-dimensional sample at row 0")
	}
	for i, row := range x {
		if len(row) != dim {
			return 0, fmt.Errorf("dimension mismatch: row %d has %d elements, expected %d", i, len(row), dim)
		}
	}
	return dim, nil
}

// CheckPair verifies two sample matrices agree on dimensionality with each
// other. Mismatches fail predictably, never silently truncate.
func CheckPair(pos, neg [][]float32) (int, error) {
	posDim, err := CheckRows(pos)
	if err != nil {
		return 0, fmt.Errorf("positive samples: %w", err)
	}
	negDim, err := CheckRows(neg)
	if err != nil {
		return 0, fmt.Errorf("negative samples: %w", err)
	}
	if posDim != negDim {
		return 0, fmt.Errorf("dimension mismatch: positive samples have %d dims, negative have %d", posDim, negDim)
	}
	return posDim, nil
}
// #endregion dimension-checks

// #region stack
// Stack concatenates positive rows then negative rows into one matrix with
// labels (1 for positive, 0 for negative). Rows are copied so callers can
// keep treating their samples as immutable.
func Stack(pos, neg [][]float32) LabeledSet {
	x := make([][]float32, 0, len(pos)+len(neg))
	y := make([]int, 0, len(pos)+len(neg))
	for _, row := range pos {
		x = append(x, append([]float32(nil), row...))
		y = append(y, 1)
	}
	for _, row := range neg {
		x = append(x, append([]float32(nil), row...))
		y = append(y, 0)
	}
	return LabeledSet{X: x, Y: y}
}
// #endregion stack

// #region concat
// ConcatLayers horizontally concatenates per-layer vectors in the given layer
// order, producing the joint feature space for ensemble probes.
func ConcatLayers(byLayer map[int][]float32, layers []int) []float32 {
	var out []float32
	for _, l := range layers {
		out = append(out, byLayer[l]...)
	}
	return out
}
// #endregion concat
