package metrics

import (
	"math"
	"sort"
)

// #region auc
// AUC computes the area under the ROC curve via the rank-sum formulation.
// Returns 0.5 when either class is absent (no ranking information).
func AUC(scores []float64, labels []int) float64 {
	type pair struct {
		score float64
		label int
	}
	pairs := make([]pair, len(scores))
	var nPos, nNeg float64
	for i, s := range scores {
		pairs[i] = pair{s, labels[i]}
		if labels[i] == 1 {
			nPos++
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		return 0.5
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].score < pairs[j].score })

	// Mid-ranks for ties
	ranks := make([]float64, len(pairs))
	for i := 0; i < len(pairs); {
		j := i
		for j < len(pairs) && pairs[j].score == pairs[i].score {
			j++
		}
		mid := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			ranks[k] = mid
		}
		i = j
	}

	var rankSum float64
	for i, p := range pairs {
		if p.label == 1 {
			rankSum += ranks[i]
		}
	}
	return (rankSum - nPos*(nPos+1)/2.0) / (nPos * nNeg)
}
// #endregion auc

// #region pr-curve
// PRPoint is one operating point on a precision-recall curve.
type PRPoint struct {
	Threshold float64
	Precision float64
	Recall    float64
}

// PRCurve computes precision/recall at every distinct score treated as a
// decision threshold (predict positive when score > threshold).
func PRCurve(scores []float64, labels []int) []PRPoint {
	distinct := distinctSorted(scores)
	var totalPos float64
	for _, l := range labels {
		if l == 1 {
			totalPos++
		}
	}

	points := make([]PRPoint, 0, len(distinct))
	for _, th := range distinct {
		var tp, fp float64
		for i, s := range scores {
			if s > th {
				if labels[i] == 1 {
					tp++
				} else {
					fp++
				}
			}
		}
		precision := 1.0
		if tp+fp > 0 {
			precision = tp / (tp + fp)
		}
		recall := 0.0
		if totalPos > 0 {
			recall = tp / totalPos
		}
		points = append(points, PRPoint{Threshold: th, Precision: precision, Recall: recall})
	}
	return points
}

// BestF1Threshold returns the threshold from the PR curve maximizing F1.
// Falls back to 0.5 on an empty curve.
func BestF1Threshold(scores []float64, labels []int) float64 {
	points := PRCurve(scores, labels)
	best := 0.5
	bestF1 := -1.0
	for _, p := range points {
		if p.Precision+p.Recall == 0 {
			continue
		}
		f1 := 2 * p.Precision * p.Recall / (p.Precision + p.Recall)
		if f1 > bestF1 {
			bestF1 = f1
			best = p.Threshold
		}
	}
	return best
}
// #endregion pr-curve

// #region percentile
// Percentile returns the p-th percentile (0-100) of values using linear
// interpolation between closest ranks. Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
// #endregion percentile

// #region confusion
// Confusion holds binary confusion-matrix counts at a fixed threshold.
type Confusion struct {
	TP, FP, TN, FN int
}

// ConfusionAt classifies scores at the given threshold (positive when
// score > threshold) against the labels.
func ConfusionAt(scores []float64, labels []int, threshold float64) Confusion {
	var c Confusion
	for i, s := range scores {
		predicted := s > threshold
		actual := labels[i] == 1
		switch {
		case predicted && actual:
			c.TP++
		case predicted && !actual:
			c.FP++
		case !predicted && actual:
			c.FN++
		default:
			c.TN++
		}
	}
	return c
}

// TPR returns the true positive rate (recall). 0 when no positives.
func (c Confusion) TPR() float64 {
	if c.TP+c.FN == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

// FPR returns the false positive rate. 0 when no negatives.
func (c Confusion) FPR() float64 {
	if c.FP+c.TN == 0 {
		return 0
	}
	return float64(c.FP) / float64(c.FP+c.TN)
}

// Precision returns TP / (TP + FP). 0 when nothing was predicted positive.
func (c Confusion) Precision() float64 {
	if c.TP+c.FP == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Accuracy returns the fraction of correct predictions.
func (c Confusion) Accuracy() float64 {
	total := c.TP + c.FP + c.TN + c.FN
	if total == 0 {
		return 0
	}
	return float64(c.TP+c.TN) / float64(total)
}

// F1 returns the harmonic mean of precision and recall.
func (c Confusion) F1() float64 {
	p := c.Precision()
	r := c.TPR()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}
// #endregion confusion

// #region helpers
func distinctSorted(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
// #endregion helpers
