package spectral

// Score normalizes each saliency value against its local average over window
// z: (s - avg) / avg. A zero local average yields a non-finite score (NaN or
// infinity) which is passed through unmodified; the threshold comparison
// downstream resolves NaN to "not anomalous". Substituting a default value
// here would change outputs.
func Score(saliency []float64, z int) []float64 {
	avg := Convolve(saliency, z)
	out := make([]float64, len(saliency))
	for i, s := range saliency {
		out[i] = (s - avg[i]) / avg[i]
	}
	return out
}
