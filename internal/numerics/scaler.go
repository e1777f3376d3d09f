package numerics

import (
	"fmt"
	"math"
)

// #region scaler
// StandardScaler centers each column to zero mean and unit variance.
// Disabled by default in probe training; kept for parity with runs that
// enable it.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// Fit computes per-column mean and standard deviation.
func (s *StandardScaler) Fit(x [][]float32) error {
	if len(x) == 0 {
		return fmt.Errorf("scaler fit: empty matrix")
	}
	dim := len(x[0])
	s.Mean = make([]float64, dim)
	s.Std = make([]float64, dim)
	n := float64(len(x))

	for _, row := range x {
		for j, v := range row {
			s.Mean[j] += float64(v)
		}
	}
	for j := range s.Mean {
		s.Mean[j] /= n
	}
	for _, row := range x {
		for j, v := range row {
			d := float64(v) - s.Mean[j]
			s.Std[j] += d * d
		}
	}
	for j := range s.Std {
		s.Std[j] = math.Sqrt(s.Std[j] / n)
		if s.Std[j] == 0 {
			s.Std[j] = 1 // constant column, leave centered values at 0
		}
	}
	return nil
}

// Transform scales a matrix in a fresh copy.
func (s *StandardScaler) Transform(x [][]float32) [][]float32 {
	out := make([][]float32, len(x))
	for i, row := range x {
		out[i] = s.TransformRow(row)
	}
	return out
}

// TransformRow scales a single row in a fresh copy.
func (s *StandardScaler) TransformRow(row []float32) []float32 {
	out := make([]float32, len(row))
	for j, v := range row {
		if j < len(s.Mean) {
			out[j] = float32((float64(v) - s.Mean[j]) / s.Std[j])
		} else {
			out[j] = v
		}
	}
	return out
}
// #endregion scaler
