package boost

import "testing"

func TestFitAndPredictSeparableData(t *testing.T) {
	x := [][]float64{
		{10, 1.0},
		{9, 0.8},
		{8, 0.9},
		{1, -0.5},
		{0, -0.7},
		{2, -0.4},
	}
	y := []int{1, 1, 1, 0, 0, 0}

	c := NewClassifier()
	if err := c.Fit(x, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	got, err := c.Predict(x)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	for i, label := range got {
		if label != y[i] {
			t.Fatalf("row %d: expected %d, got %d (all %v)", i, y[i], label, got)
		}
	}
}

func TestFitConstantLabels(t *testing.T) {
	x := [][]float64{{1}, {2}, {3}}
	y := []int{1, 1, 1}

	c := NewClassifier()
	if err := c.Fit(x, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	got, err := c.Predict([][]float64{{0}, {10}})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if got[0] != 1 || got[1] != 1 {
		t.Fatalf("expected constant positive predictions, got %v", got)
	}
}

func TestFitRejectsBadInput(t *testing.T) {
	c := NewClassifier()
	if err := c.Fit(nil, nil); err == nil {
		t.Fatal("expected error for empty matrix")
	}
	if err := c.Fit([][]float64{{1}}, []int{1, 0}); err == nil {
		t.Fatal("expected error for row/label count mismatch")
	}
	if err := c.Fit([][]float64{{1}, {2}}, []int{1, 2}); err == nil {
		t.Fatal("expected error for non-binary label")
	}
	if err := c.Fit([][]float64{{1, 2}, {3}}, []int{1, 0}); err == nil {
		t.Fatal("expected error for ragged matrix")
	}
}

func TestPredictBeforeFit(t *testing.T) {
	c := NewClassifier()
	if _, err := c.Predict([][]float64{{1}}); err == nil {
		t.Fatal("expected error when predicting before fit")
	}
}

func TestPredictRejectsWidthMismatch(t *testing.T) {
	c := NewClassifier()
	if err := c.Fit([][]float64{{1, 2}, {3, 4}}, []int{0, 1}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if _, err := c.Predict([][]float64{{1}}); err == nil {
		t.Fatal("expected error for feature width mismatch")
	}
}
