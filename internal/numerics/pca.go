package numerics

import (
	"fmt"
	"math/rand"
)

// #region pca
// PCALearner extracts principal components via power iteration with
// deflation. It is the always-available fallback when sparse dictionary
// learning fails: the components serve as a (dense) dictionary.
type PCALearner struct {
	NIter int
	Seed  int64
}

// NewPCALearner creates a learner with standard iteration count.
func NewPCALearner() *PCALearner {
	return &PCALearner{NIter: 100, Seed: 7}
}

// Fit returns up to nComponents principal directions of the centered data.
func (p *PCALearner) Fit(x [][]float32, nComponents int) ([][]float32, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("pca fit: empty sample matrix")
	}
	if nComponents <= 0 {
		return nil, fmt.Errorf("pca fit: nComponents must be positive, got %d", nComponents)
	}
	dim := len(x[0])
	n := len(x)

	// Center
	mean := make([]float64, dim)
	for _, row := range x {
		for j, v := range row {
			mean[j] += float64(v)
		}
	}
	for j := range mean {
		mean[j] /= float64(n)
	}
	centered := make([][]float64, n)
	for i, row := range x {
		c := make([]float64, dim)
		for j, v := range row {
			c[j] = float64(v) - mean[j]
		}
		centered[i] = c
	}

	rng := rand.New(rand.NewSource(p.Seed))
	iters := p.NIter
	if iters <= 0 {
		iters = 100
	}
	if nComponents > dim {
		nComponents = dim
	}

	components := make([][]float32, 0, nComponents)
	for k := 0; k < nComponents; k++ {
		v := make([]float64, dim)
		for j := range v {
			v[j] = rng.NormFloat64()
		}
		normalize(v)

		for it := 0; it < iters; it++ {
			// w = X^T X v without forming the covariance matrix
			w := make([]float64, dim)
			for _, row := range centered {
				var dot float64
				for j, rv := range row {
					dot += rv * v[j]
				}
				for j, rv := range row {
					w[j] += dot * rv
				}
			}
			if norm(w) < 1e-12 {
				break // data has no variance left in this subspace
			}
			normalize(w)
			v = w
		}

		// Deflate: remove the found direction from every row
		for _, row := range centered {
			var dot float64
			for j, rv := range row {
				dot += rv * v[j]
			}
			for j := range row {
				row[j] -= dot * v[j]
			}
		}

		comp := make([]float32, dim)
		for j, val := range v {
			comp[j] = float32(val)
		}
		components = append(components, comp)
	}
	return components, nil
}
// #endregion pca
