package spectral

import (
	"errors"
	"reflect"
	"testing"
)

func TestDetect_OutputShape(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}
	cfg := Config{Q: 3, Z: 5, Threshold: 2.0, TrendWindow: 5, ExtraPoints: 3}

	result, err := Detect(data, cfg)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if len(result.Saliency) != len(data) {
		t.Errorf("Expected %d saliency values, got %d", len(data), len(result.Saliency))
	}
	if len(result.Score) != len(data) {
		t.Errorf("Expected %d scores, got %d", len(data), len(result.Score))
	}
	if len(result.Flags) != len(data) {
		t.Errorf("Expected %d flags, got %d", len(data), len(result.Flags))
	}
}

func TestDetect_FlagsMatchScores(t *testing.T) {
	data := []float64{10, 10, 10, 10, 10, 10, 100, 10, 10, 10, 10, 10}
	cfg := DefaultConfig()
	cfg.TrendWindow = 5
	cfg.ExtraPoints = 2
	cfg.Z = 5

	result, err := Detect(data, cfg)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	for i, s := range result.Score {
		if result.Flags[i] != (s > cfg.Threshold) {
			t.Errorf("Index %d: flag %v does not match score %v against threshold %v",
				i, result.Flags[i], s, cfg.Threshold)
		}
	}
}

func TestDetect_Deterministic(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	cfg := DefaultConfig()
	cfg.Z = 5

	first, err := Detect(data, cfg)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	second, err := Detect(data, cfg)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected bit-identical results for identical inputs")
	}
}

func TestDetect_ExtrapolationDisabled(t *testing.T) {
	data := []float64{2, 4, 6, 8, 10, 8, 6, 4}
	cfg := DefaultConfig()
	cfg.ExtraPoints = 0
	cfg.Z = 3

	result, err := Detect(data, cfg)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(result.Saliency) != len(data) {
		t.Errorf("Expected %d saliency values, got %d", len(data), len(result.Saliency))
	}
}

func TestDetect_InsufficientHistory(t *testing.T) {
	data := []float64{1, 2, 3}
	cfg := DefaultConfig() // TrendWindow 5 > 3 points

	_, err := Detect(data, cfg)
	if err == nil {
		t.Fatal("Expected error when trend window exceeds series length")
	}

	var ihe *InsufficientHistoryError
	if !errors.As(err, &ihe) {
		t.Fatalf("Expected *InsufficientHistoryError, got %T", err)
	}
}

func TestDetect_InputNotMutated(t *testing.T) {
	data := []float64{5, 1, 5, 1, 5, 1, 5, 1}
	orig := make([]float64, len(data))
	copy(orig, data)

	cfg := DefaultConfig()
	cfg.TrendWindow = 4
	cfg.ExtraPoints = 2
	if _, err := Detect(data, cfg); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if !reflect.DeepEqual(data, orig) {
		t.Error("Expected input series to be left untouched")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Q != 3 || cfg.Z != 21 || cfg.Threshold != 3.0 || cfg.TrendWindow != 5 || cfg.ExtraPoints != 5 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}
