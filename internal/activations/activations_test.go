package activations

import (
	"strings"
	"testing"
)

// #region check-tests
func TestCheckRows(t *testing.T) {
	dim, err := CheckRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dim != 3 {
		t.Errorf("expected dim 3, got %d", dim)
	}
}

func TestCheckRows_Empty(t *testing.T) {
	if _, err := CheckRows(nil); err == nil {
		t.Fatal("expected error for empty matrix")
	}
}

func TestCheckRows_Mismatch(t *testing.T) {
	_, err := CheckRows([][]float32{{1, 2}, {1, 2, 3}})
	if err == nil {
		t.Fatal("expected dimension-mismatch error")
	}
	if !strings.Contains(err.Error(), "dimension mismatch") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestCheckPair_CrossMismatch(t *testing.T) {
	pos := [][]float32{{1, 2, 3}}
	neg := [][]float32{{1, 2}}
	if _, err := CheckPair(pos, neg); err == nil {
		t.Fatal("expected error when positive and negative dims disagree")
	}
}

// #endregion check-tests

// #region stack-tests
func TestStack_LabelsAndCopies(t *testing.T) {
	pos := [][]float32{{1, 1}}
	neg := [][]float32{{0, 0}, {0, 1}}
	set := Stack(pos, neg)

	if len(set.X) != 3 || len(set.Y) != 3 {
		t.Fatalf("expected 3 rows, got %d/%d", len(set.X), len(set.Y))
	}
	if set.Y[0] != 1 || set.Y[1] != 0 || set.Y[2] != 0 {
		t.Errorf("expected labels [1 0 0], got %v", set.Y)
	}

	// Mutating the source row must not leak into the stacked copy.
	pos[0][0] = 99
	if set.X[0][0] != 1 {
		t.Error("expected stacked rows to be copies of the input")
	}
}

// #endregion stack-tests

// #region concat-tests
func TestConcatLayers_Order(t *testing.T) {
	byLayer := map[int][]float32{
		4: {1, 2},
		8: {3, 4},
	}
	joint := ConcatLayers(byLayer, []int{8, 4})
	want := []float32{3, 4, 1, 2}
	for i := range want {
		if joint[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, joint)
		}
	}
}

// #endregion concat-tests
