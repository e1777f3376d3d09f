package numerics

import (
	"fmt"
	"math"
)

// #region logistic
// LogisticRegression is a gradient-descent logistic regression classifier.
// The penalty type selects the regularization applied during fitting: "l2"
// adds a smooth weight-decay term, "l1" applies proximal shrinkage per step.
type LogisticRegression struct {
	Config  LogisticConfig
	Weights []float64
	Bias    float64
}

// NewLogisticRegression creates an unfitted classifier.
func NewLogisticRegression(config LogisticConfig) *LogisticRegression {
	return &LogisticRegression{Config: config}
}
// #endregion logistic

// #region fit
// Fit trains on rows x with binary labels y. Rows must share dimensionality.
func (lr *LogisticRegression) Fit(x [][]float32, y []int) error {
	if len(x) == 0 {
		return fmt.Errorf("logistic fit: empty training set")
	}
	if len(x) != len(y) {
		return fmt.Errorf("logistic fit: %d rows but %d labels", len(x), len(y))
	}
	dim := len(x[0])
	for i, row := range x {
		if len(row) != dim {
			return fmt.Errorf("logistic fit: row %d has %d dims, expected %d", i, len(row), dim)
		}
	}

	if len(lr.Weights) != dim {
		lr.Weights = make([]float64, dim)
		lr.Bias = 0
	}

	lambda := 0.0
	if lr.Config.C > 0 {
		lambda = 1.0 / lr.Config.C
	}
	n := float64(len(x))
	grad := make([]float64, dim)

	for iter := 0; iter < lr.Config.MaxIter; iter++ {
		for j := range grad {
			grad[j] = 0
		}
		var gradBias float64

		for i, row := range x {
			p := lr.predictRow(row)
			diff := p - float64(y[i])
			for j, v := range row {
				grad[j] += diff * float64(v)
			}
			gradBias += diff
		}

		var maxStep float64
		for j := range lr.Weights {
			g := grad[j] / n
			if lr.Config.Penalty == "l2" {
				g += lambda * lr.Weights[j] / n
			}
			step := lr.Config.LearningRate * g
			lr.Weights[j] -= step
			if lr.Config.Penalty == "l1" {
				lr.Weights[j] = shrink(lr.Weights[j], lr.Config.LearningRate*lambda/n)
			}
			if s := math.Abs(step); s > maxStep {
				maxStep = s
			}
		}
		lr.Bias -= lr.Config.LearningRate * gradBias / n

		if maxStep < lr.Config.Tol {
			break
		}
	}
	return nil
}
// #endregion fit

// #region predict
// PredictProba returns the positive-class probability for one row.
func (lr *LogisticRegression) PredictProba(row []float32) float64 {
	return lr.predictRow(row)
}

// RawScore returns the pre-sigmoid logit for one row.
func (lr *LogisticRegression) RawScore(row []float32) float64 {
	z := lr.Bias
	for j, v := range row {
		if j < len(lr.Weights) {
			z += lr.Weights[j] * float64(v)
		}
	}
	return z
}

func (lr *LogisticRegression) predictRow(row []float32) float64 {
	z := lr.Bias
	for j, v := range row {
		if j < len(lr.Weights) {
			z += lr.Weights[j] * float64(v)
		}
	}
	return sigmoid(z)
}
// #endregion predict

// #region helpers
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1.0 / (1.0 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1.0 + e)
}

// shrink applies the soft-thresholding (proximal L1) operator.
func shrink(w, threshold float64) float64 {
	switch {
	case w > threshold:
		return w - threshold
	case w < -threshold:
		return w + threshold
	default:
		return 0
	}
}
// #endregion helpers

// #region centroid-fallback
// CentroidClassifier is the degraded fallback scorer used when logistic
// training fails: it keeps per-class mean vectors and scores by relative
// distance. Reported AUC for probes trained on it is the placeholder 0.5.
type CentroidClassifier struct {
	posMean []float64
	negMean []float64
}

// Fit computes per-class centroids.
func (c *CentroidClassifier) Fit(x [][]float32, y []int) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("centroid fit: bad input (%d rows, %d labels)", len(x), len(y))
	}
	dim := len(x[0])
	c.posMean = make([]float64, dim)
	c.negMean = make([]float64, dim)
	var nPos, nNeg float64
	for i, row := range x {
		if y[i] == 1 {
			for j, v := range row {
				c.posMean[j] += float64(v)
			}
			nPos++
		} else {
			for j, v := range row {
				c.negMean[j] += float64(v)
			}
			nNeg++
		}
	}
	for j := range c.posMean {
		if nPos > 0 {
			c.posMean[j] /= nPos
		}
		if nNeg > 0 {
			c.negMean[j] /= nNeg
		}
	}
	return nil
}

// NewCentroidFromMeans rebuilds a classifier from persisted centroids.
func NewCentroidFromMeans(pos, neg []float64) *CentroidClassifier {
	return &CentroidClassifier{posMean: pos, negMean: neg}
}

// Means returns the per-class centroids for persistence.
func (c *CentroidClassifier) Means() (pos, neg []float64) {
	return c.posMean, c.negMean
}

// PredictProba maps the distance margin between centroids through a sigmoid.
func (c *CentroidClassifier) PredictProba(row []float32) float64 {
	var dPos, dNeg float64
	for j, v := range row {
		if j < len(c.posMean) {
			dp := float64(v) - c.posMean[j]
			dn := float64(v) - c.negMean[j]
			dPos += dp * dp
			dNeg += dn * dn
		}
	}
	return sigmoid(math.Sqrt(dNeg) - math.Sqrt(dPos))
}
// #endregion centroid-fallback
