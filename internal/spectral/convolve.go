package spectral

// Convolve computes a fixed-window moving average over data with window size
// w >= 1 and returns a sequence of the same length. Both ends are padded with
// zeros before sliding the window: lp = w/2-1 zeros on the left when w is
// even, (w-1)/2 when odd, and w-lp-1 on the right. The zero padding biases
// boundary averages toward zero; that bias is part of the algorithm's numeric
// signature and is relied on by the saliency and scoring steps.
func Convolve(data []float64, w int) []float64 {
	lp := (w - 1) / 2
	if w%2 == 0 {
		lp = w/2 - 1
	}
	rp := w - lp - 1

	padded := make([]float64, lp+len(data)+rp)
	copy(padded[lp:], data)

	// lp+rp == w-1, so the window count equals len(data).
	out := make([]float64, len(data))
	for i := range out {
		var sum float64
		for j := 0; j < w; j++ {
			sum += padded[i+j]
		}
		out[i] = sum / float64(w)
	}
	return out
}
