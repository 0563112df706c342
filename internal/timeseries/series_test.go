package timeseries

import (
	"math"
	"testing"
	"time"
)

func sampleSeries(values []float64) Series {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = Point{Time: base.Add(time.Duration(i) * time.Minute), Value: v}
	}
	return s
}

func TestSeries_Values(t *testing.T) {
	s := sampleSeries([]float64{1.5, -2, 7})
	values := s.Values()
	if len(values) != 3 {
		t.Fatalf("Expected 3 values, got %d", len(values))
	}
	for i, want := range []float64{1.5, -2, 7} {
		if values[i] != want {
			t.Errorf("Index %d: expected %v, got %v", i, want, values[i])
		}
	}
}

func TestSeries_Times(t *testing.T) {
	s := sampleSeries([]float64{1, 2})
	times := s.Times()
	if len(times) != 2 {
		t.Fatalf("Expected 2 times, got %d", len(times))
	}
	if !times[1].Equal(times[0].Add(time.Minute)) {
		t.Errorf("Expected one minute spacing, got %v and %v", times[0], times[1])
	}
}

func TestSeries_Mean(t *testing.T) {
	s := sampleSeries([]float64{2, 4, 6})
	if got := s.Mean(); got != 4 {
		t.Errorf("Expected mean 4, got %v", got)
	}
	if got := (Series{}).Mean(); got != 0 {
		t.Errorf("Expected zero mean for empty series, got %v", got)
	}
}

func TestSeries_StdDev(t *testing.T) {
	s := sampleSeries([]float64{2, 4, 6})
	if got := s.StdDev(); math.Abs(got-2) > 1e-12 {
		t.Errorf("Expected stddev 2, got %v", got)
	}
	if got := sampleSeries([]float64{5}).StdDev(); got != 0 {
		t.Errorf("Expected zero stddev for single sample, got %v", got)
	}
}
