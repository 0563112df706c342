package spectral

import (
	"math"
	"math/cmplx"

	"github.com/madelynnblue/go-dsp/fft"
)

// SaliencyMap computes the spectral-residual saliency signal of data using
// smoothing window q and returns a non-negative sequence of the same length.
//
// The series is transformed with a forward DFT (any length, not just powers
// of two), each bin is scaled by 1/n and split into amplitude and phase, the
// log-amplitude spectrum is smoothed with Convolve(q) and subtracted from
// itself to form the residual, a complex spectrum is rebuilt per bin and the
// saliency map is the magnitude of its inverse transform.
func SaliencyMap(data []float64, q int) []float64 {
	n := len(data)

	freq := fft.FFTReal(data)

	logAmp := make([]float64, n)
	phase := make([]float64, n)
	for i, c := range freq {
		c /= complex(float64(n), 0)
		logAmp[i] = math.Log(cmplx.Abs(c))
		phase[i] = cmplx.Phase(c)
	}

	avgLogAmp := Convolve(logAmp, q)

	recon := make([]complex128, n)
	for i := range recon {
		recon[i] = reconstruct(logAmp[i]-avgLogAmp[i], phase[i])
	}

	back := fft.IFFT(recon)

	sal := make([]float64, n)
	for i, c := range back {
		// IFFT divides by n; the pipeline needs the unnormalized inverse
		// matching the forward transform, so scale the magnitude back up.
		sal[i] = cmplx.Abs(c) * float64(n)
	}
	return sal
}

// reconstruct rebuilds a frequency-domain sample from the residual r and
// phase p: the complex number with polar coordinates (r, p) is formed first
// and the complex exponential is applied to it. This is not the same as
// exponentiating the magnitude while keeping the phase.
func reconstruct(r, p float64) complex128 {
	return cmplx.Exp(complex(r*math.Cos(p), r*math.Sin(p)))
}
