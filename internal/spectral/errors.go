package spectral

import "fmt"

// InsufficientHistoryError reports a trend window larger than the series it
// is supposed to be estimated from. This is a caller configuration error;
// the pipeline aborts rather than guessing a smaller window.
type InsufficientHistoryError struct {
	TrendWindow int // requested m
	SeriesLen   int // available points
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history: trend window %d exceeds series length %d",
		e.TrendWindow, e.SeriesLen)
}
