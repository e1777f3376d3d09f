package metrics

import (
	"math"
	"testing"
)

// #region auc-tests
func TestAUC_PerfectSeparation(t *testing.T) {
	scores := []float64{0.9, 0.8, 0.2, 0.1}
	labels := []int{1, 1, 0, 0}
	if got := AUC(scores, labels); got != 1.0 {
		t.Errorf("expected AUC 1.0 for perfect separation, got %f", got)
	}
}

func TestAUC_PerfectInversion(t *testing.T) {
	scores := []float64{0.1, 0.2, 0.8, 0.9}
	labels := []int{1, 1, 0, 0}
	if got := AUC(scores, labels); got != 0.0 {
		t.Errorf("expected AUC 0.0 for inverted ranking, got %f", got)
	}
}

func TestAUC_Ties(t *testing.T) {
	// All scores equal: every pairwise comparison is a tie, mid-rank AUC = 0.5.
	scores := []float64{0.5, 0.5, 0.5, 0.5}
	labels := []int{1, 1, 0, 0}
	if got := AUC(scores, labels); got != 0.5 {
		t.Errorf("expected AUC 0.5 under total ties, got %f", got)
	}
}

func TestAUC_SingleClass(t *testing.T) {
	if got := AUC([]float64{0.3, 0.7}, []int{1, 1}); got != 0.5 {
		t.Errorf("expected placeholder 0.5 with one class, got %f", got)
	}
}

func TestAUC_PartialOverlap(t *testing.T) {
	// Ranked ascending: 0.1(0) 0.3(1) 0.4(0) 0.8(1).
	// Concordant pairs: (0.3 vs 0.1)=1, (0.8 vs 0.1)=1, (0.8 vs 0.4)=1;
	// discordant: (0.3 vs 0.4)=0. AUC = 3/4.
	scores := []float64{0.3, 0.8, 0.1, 0.4}
	labels := []int{1, 1, 0, 0}
	if got := AUC(scores, labels); got != 0.75 {
		t.Errorf("expected AUC 0.75, got %f", got)
	}
}

// #endregion auc-tests

// #region pr-tests
func TestBestF1Threshold_SeparableScores(t *testing.T) {
	scores := []float64{0.9, 0.8, 0.2, 0.1}
	labels := []int{1, 1, 0, 0}
	th := BestF1Threshold(scores, labels)
	// Any threshold in [0.2, 0.8) gives F1=1; the curve visits distinct
	// scores, so 0.2 is the first perfect point.
	if th != 0.2 {
		t.Errorf("expected best-F1 threshold 0.2, got %f", th)
	}
	c := ConfusionAt(scores, labels, th)
	if c.TP != 2 || c.FP != 0 || c.TN != 2 || c.FN != 0 {
		t.Errorf("expected perfect confusion at best threshold, got %+v", c)
	}
}

func TestPRCurve_PrecisionRecallValues(t *testing.T) {
	scores := []float64{0.9, 0.6, 0.4, 0.1}
	labels := []int{1, 0, 1, 0}
	points := PRCurve(scores, labels)
	if len(points) != 4 {
		t.Fatalf("expected 4 distinct thresholds, got %d", len(points))
	}
	// At threshold 0.4: predicted positive = {0.9, 0.6} → tp=1, fp=1.
	// precision = 0.5, recall = 1/2.
	var at04 *PRPoint
	for i := range points {
		if points[i].Threshold == 0.4 {
			at04 = &points[i]
		}
	}
	if at04 == nil {
		t.Fatal("expected a PR point at threshold 0.4")
	}
	if at04.Precision != 0.5 || at04.Recall != 0.5 {
		t.Errorf("expected precision/recall 0.5/0.5 at 0.4, got %f/%f", at04.Precision, at04.Recall)
	}
}

// #endregion pr-tests

// #region percentile-tests
func TestPercentile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{50, 3},
		{100, 5},
		{25, 2},  // rank 1.0 exactly
		{90, 4.6}, // rank 3.6: 4*(0.4) + 5*(0.6)
	}
	for _, c := range cases {
		if got := Percentile(values, c.p); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Percentile(%v, %f) = %f, want %f", values, c.p, got, c.want)
		}
	}
}

func TestPercentile_Empty(t *testing.T) {
	if got := Percentile(nil, 90); got != 0 {
		t.Errorf("expected 0 for empty slice, got %f", got)
	}
}

func TestPercentile_DoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Percentile(values, 50)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input slice was mutated: %v", values)
	}
}

// #endregion percentile-tests

// #region confusion-tests
func TestConfusion_Metrics(t *testing.T) {
	scores := []float64{0.9, 0.7, 0.6, 0.2}
	labels := []int{1, 0, 1, 0}
	c := ConfusionAt(scores, labels, 0.5)
	// Predicted positive: 0.9(1), 0.7(0), 0.6(1). TP=2 FP=1 TN=1 FN=0.
	if c.TP != 2 || c.FP != 1 || c.TN != 1 || c.FN != 0 {
		t.Fatalf("unexpected confusion %+v", c)
	}
	if c.TPR() != 1.0 {
		t.Errorf("expected TPR 1.0, got %f", c.TPR())
	}
	if c.FPR() != 0.5 {
		t.Errorf("expected FPR 0.5, got %f", c.FPR())
	}
	if math.Abs(c.Precision()-2.0/3.0) > 1e-9 {
		t.Errorf("expected precision 2/3, got %f", c.Precision())
	}
	if c.Accuracy() != 0.75 {
		t.Errorf("expected accuracy 0.75, got %f", c.Accuracy())
	}
	// F1 = 2*(2/3)*1 / (2/3 + 1) = 0.8
	if math.Abs(c.F1()-0.8) > 1e-9 {
		t.Errorf("expected F1 0.8, got %f", c.F1())
	}
}

func TestConfusion_EmptyDenominators(t *testing.T) {
	var c Confusion
	if c.TPR() != 0 || c.FPR() != 0 || c.Precision() != 0 || c.Accuracy() != 0 || c.F1() != 0 {
		t.Error("expected all metrics 0 on empty confusion matrix")
	}
}

// #endregion confusion-tests
