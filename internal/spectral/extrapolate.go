package spectral

// Extrapolate extends data with k trend-estimated points at each end and
// returns a sequence of length len(data)+2k. The trend is the average
// gradient between the last point and each of the m points preceding it;
// the extrapolated value data[last-m+1] + g*m is repeated k times on both
// ends. k == 0 returns a copy of data unchanged.
//
// Returns *InsufficientHistoryError when m > len(data).
func Extrapolate(data []float64, m, k int) ([]float64, error) {
	if k == 0 {
		out := make([]float64, len(data))
		copy(out, data)
		return out, nil
	}
	if m > len(data) {
		return nil, &InsufficientHistoryError{TrendWindow: m, SeriesLen: len(data)}
	}

	last := len(data) - 1

	// m == len(data) leaves no pair below index 0; the gradient sum is then
	// empty and g stays 0, matching the reference behavior.
	var g float64
	for i := last - m; i >= 0 && i < last; i++ {
		g += pairGradient(data, last, i)
	}
	g /= float64(m)

	extra := data[last-m+1] + g*float64(m)

	out := make([]float64, 0, len(data)+2*k)
	for i := 0; i < k; i++ {
		out = append(out, extra)
	}
	out = append(out, data...)
	for i := 0; i < k; i++ {
		out = append(out, extra)
	}
	return out, nil
}

// pairGradient computes the value difference between two points divided by
// their index difference, with the divisor taken through an unsigned
// wraparound conversion. For the descending pairs the trend estimate walks
// (x2 < x1), the divisor lands near 2^64 and the pair contributes a
// vanishing gradient. Extrapolation output depends on this exact behavior,
// e.g. Extrapolate([1,2,3,4,5], 3, 2) = [3,3,1,2,3,4,5,3,3]; replacing the
// divisor with the signed difference changes it.
func pairGradient(data []float64, x1, x2 int) float64 {
	return (data[x2] - data[x1]) / float64(uint64(int64(x2-x1)))
}
