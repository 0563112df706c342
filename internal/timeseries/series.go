// Package timeseries defines the sample model shared by the input reader,
// the detector and the result renderers.
package timeseries

import (
	"math"
	"time"
)

// Point represents a single time-series sample with time and value.
// The detection core treats the timestamp as an opaque pass-through value;
// only the reader and the renderers interpret it.
type Point struct {
	Time  time.Time
	Value float64
}

// Series represents an ordered collection of samples. Order is time order.
type Series []Point

// Values extracts just the values from the series
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Times extracts just the times from the series
func (s Series) Times() []time.Time {
	times := make([]time.Time, len(s))
	for i, p := range s {
		times[i] = p.Time
	}
	return times
}

// Len returns the number of samples
func (s Series) Len() int {
	return len(s)
}

// Mean calculates the mean of all values
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range s {
		sum += p.Value
	}
	return sum / float64(len(s))
}

// StdDev calculates the sample standard deviation of all values
func (s Series) StdDev() float64 {
	if len(s) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, p := range s {
		diff := p.Value - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(s)-1))
}
