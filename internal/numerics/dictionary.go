package numerics

import (
	"fmt"
	"math"
	"math/rand"
)

// #region learner
// MiniBatchDictionaryLearner learns a sparse dictionary with online
// mini-batch updates: ISTA sparse codes for each batch, then a gradient step
// on the atoms followed by renormalization.
type MiniBatchDictionaryLearner struct {
	Config DictionaryConfig
}

// NewMiniBatchDictionaryLearner creates a learner with the given config.
func NewMiniBatchDictionaryLearner(config DictionaryConfig) *MiniBatchDictionaryLearner {
	return &MiniBatchDictionaryLearner{Config: config}
}

// Fit learns nComponents atoms from the rows of x.
func (l *MiniBatchDictionaryLearner) Fit(x [][]float32, nComponents int) ([][]float32, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("dictionary fit: empty sample matrix")
	}
	if nComponents <= 0 {
		return nil, fmt.Errorf("dictionary fit: nComponents must be positive, got %d", nComponents)
	}
	dim := len(x[0])
	if dim == 0 {
		return nil, fmt.Errorf("dictionary fit: zero-dimensional samples")
	}

	rng := rand.New(rand.NewSource(l.Config.Seed))

	// Initialize atoms from randomly chosen samples, unit-normalized.
	// Degenerate (zero-norm) picks get small random atoms instead.
	dict := make([][]float64, nComponents)
	for k := range dict {
		src := x[rng.Intn(len(x))]
		atom := make([]float64, dim)
		for j, v := range src {
			atom[j] = float64(v)
		}
		if norm(atom) < 1e-12 {
			for j := range atom {
				atom[j] = rng.NormFloat64()
			}
		}
		normalize(atom)
		dict[k] = atom
	}

	batchSize := l.Config.BatchSize
	if batchSize <= 0 || batchSize > len(x) {
		batchSize = len(x)
	}
	coder := &ISTACoder{Alpha: l.Config.Alpha, NIter: 20}
	lrStep := 0.1

	for iter := 0; iter < l.Config.NIter; iter++ {
		batch := make([][]float64, batchSize)
		for b := range batch {
			row := x[rng.Intn(len(x))]
			batch[b] = toFloat64(row)
		}

		for _, sample := range batch {
			codes := coder.encodeRow(sample, dict)

			// Residual r = sample - D^T codes
			residual := append([]float64(nil), sample...)
			for k, c := range codes {
				if c == 0 {
					continue
				}
				for j := range residual {
					residual[j] -= c * dict[k][j]
				}
			}

			// Gradient step on active atoms, then renormalize
			for k, c := range codes {
				if c == 0 {
					continue
				}
				for j := range dict[k] {
					dict[k][j] += lrStep * c * residual[j]
				}
				normalize(dict[k])
			}
		}
	}

	out := make([][]float32, nComponents)
	for k, atom := range dict {
		row := make([]float32, dim)
		for j, v := range atom {
			row[j] = float32(v)
		}
		out[k] = row
	}
	return out, nil
}
// #endregion learner

// #region ista-coder
// ISTACoder computes sparse codes via iterative shrinkage-thresholding
// against a fixed dictionary.
type ISTACoder struct {
	Alpha float64
	NIter int
}

// Encode returns one coefficient row per sample.
func (c *ISTACoder) Encode(x [][]float32, dictionary [][]float32) ([][]float64, error) {
	if len(dictionary) == 0 {
		return nil, fmt.Errorf("sparse encode: empty dictionary")
	}
	dict := make([][]float64, len(dictionary))
	for k, atom := range dictionary {
		dict[k] = toFloat64(atom)
	}
	out := make([][]float64, len(x))
	for i, row := range x {
		out[i] = c.encodeRow(toFloat64(row), dict)
	}
	return out, nil
}

func (c *ISTACoder) encodeRow(sample []float64, dict [][]float64) []float64 {
	nAtoms := len(dict)
	codes := make([]float64, nAtoms)
	iters := c.NIter
	if iters <= 0 {
		iters = 20
	}
	// Step size from a crude Lipschitz bound on D D^T (atoms are unit-norm).
	step := 1.0 / float64(nAtoms)

	for it := 0; it < iters; it++ {
		// Residual for current codes
		residual := append([]float64(nil), sample...)
		for k, cd := range codes {
			if cd == 0 {
				continue
			}
			for j := range residual {
				residual[j] -= cd * dict[k][j]
			}
		}
		for k := range codes {
			var g float64
			for j, r := range residual {
				g += dict[k][j] * r
			}
			codes[k] = shrink(codes[k]+step*g, step*c.Alpha)
		}
	}
	return codes
}
// #endregion ista-coder

// #region projection-coder
// ProjectionCoder is the fallback coder: raw linear projection of each
// sample onto each atom, no sparsity. Used when sparse coding fails.
type ProjectionCoder struct{}

// Encode computes codes[i][k] = x[i] · dictionary[k].
func (ProjectionCoder) Encode(x [][]float32, dictionary [][]float32) ([][]float64, error) {
	if len(dictionary) == 0 {
		return nil, fmt.Errorf("projection encode: empty dictionary")
	}
	out := make([][]float64, len(x))
	for i, row := range x {
		codes := make([]float64, len(dictionary))
		for k, atom := range dictionary {
			var dot float64
			for j, v := range row {
				if j < len(atom) {
					dot += float64(v) * float64(atom[j])
				}
			}
			codes[k] = dot
		}
		out[i] = codes
	}
	return out, nil
}
// #endregion projection-coder

// #region helpers
func toFloat64(row []float32) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = float64(v)
	}
	return out
}

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func normalize(v []float64) {
	n := norm(v)
	if n < 1e-12 {
		return
	}
	for j := range v {
		v[j] /= n
	}
}
// #endregion helpers
