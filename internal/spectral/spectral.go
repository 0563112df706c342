// Package spectral implements Spectral Residual anomaly detection for
// univariate time series. The method computes a frequency-domain saliency
// map of the series, scores each sample against the local saliency average
// and flags samples whose score exceeds a threshold.
package spectral

// Config holds the hyperparameters of the detection pipeline.
// All values are fixed for the duration of a Detect call.
type Config struct {
	// Q is the smoothing window for the log-amplitude spectrum.
	Q int

	// Z is the smoothing window for the saliency-to-score local average.
	Z int

	// Threshold is the decision threshold on the score.
	Threshold float64

	// TrendWindow is the number of trailing points used to estimate the
	// extrapolation gradient (m). Must not exceed the series length.
	TrendWindow int

	// ExtraPoints is the number of points extrapolated at each end of the
	// series before the transform (k). 0 disables extrapolation.
	ExtraPoints int
}

// DefaultConfig returns the default hyperparameters.
func DefaultConfig() Config {
	return Config{
		Q:           3,
		Z:           21,
		Threshold:   3.0,
		TrendWindow: 5,
		ExtraPoints: 5,
	}
}

// Result holds the three per-sample output sequences of a detection run.
// All three have the same length as the input series and are aligned
// index-for-index with it.
type Result struct {
	// Saliency is the time-domain saliency map magnitude.
	Saliency []float64

	// Score is the saliency deviation normalized by its local average.
	// Entries may be non-finite when the local average is zero.
	Score []float64

	// Flags marks the samples whose score strictly exceeds the threshold.
	Flags []bool
}

// Detect runs the full pipeline on values: extrapolate the ends, compute the
// saliency map of the extended series, trim back to the original length,
// score and threshold. It is a pure function of its inputs.
func Detect(values []float64, cfg Config) (*Result, error) {
	n := len(values)

	extended, err := Extrapolate(values, cfg.TrendWindow, cfg.ExtraPoints)
	if err != nil {
		return nil, err
	}

	k := cfg.ExtraPoints
	full := SaliencyMap(extended, cfg.Q)

	saliency := make([]float64, n)
	copy(saliency, full[k:k+n])

	score := Score(saliency, cfg.Z)

	flags := make([]bool, n)
	for i, s := range score {
		// Strict comparison: NaN scores resolve to false.
		flags[i] = s > cfg.Threshold
	}

	return &Result{
		Saliency: saliency,
		Score:    score,
		Flags:    flags,
	}, nil
}
