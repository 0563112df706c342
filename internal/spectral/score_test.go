package spectral

import (
	"math"
	"testing"
)

func TestScore_Vector(t *testing.T) {
	// avg = Convolve([1,2,3,4,5], 3) = [1,2,3,4,3]; only the last point
	// deviates from its local average.
	got := Score([]float64{1, 2, 3, 4, 5}, 3)
	assertVector(t, got, []float64{0, 0, 0, 0, 2.0 / 3.0}, 1e-12)
}

func TestScore_PreservesLength(t *testing.T) {
	saliency := []float64{0.3, 0.1, 0.9, 0.2, 0.5, 0.4}
	if got := Score(saliency, 21); len(got) != len(saliency) {
		t.Errorf("Expected length %d, got %d", len(saliency), len(got))
	}
}

func TestScore_ZeroAverageFlowsThrough(t *testing.T) {
	// An all-zero map has a zero local average everywhere; 0/0 is NaN and
	// must reach the caller as-is.
	got := Score([]float64{0, 0, 0, 0}, 3)
	for i, s := range got {
		if !math.IsNaN(s) {
			t.Errorf("Index %d: expected NaN, got %v", i, s)
		}
	}
}

func TestScore_NaNIsNeverFlagged(t *testing.T) {
	cfg := DefaultConfig()
	if math.NaN() > cfg.Threshold {
		t.Fatal("NaN must compare false against the threshold")
	}
}
