package klatt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"
)

// spectralPeak runs samples through an FFT and returns the frequency bin
// (in Hz) with the largest magnitude.
func spectralPeak(samples []float64, sampleRate float64) float64 {
	fft := fourier.NewFFT(len(samples))
	coeffs := fft.Coefficients(nil, samples)

	peakBin, peakMag := 0, 0.0
	for i, c := range coeffs {
		mag := math.Hypot(real(c), imag(c))
		if mag > peakMag {
			peakMag = mag
			peakBin = i
		}
	}
	return float64(peakBin) * sampleRate / float64(len(samples))
}

// A cascade formant filter driven by an impulse train should concentrate
// energy near its configured F1, not at some unrelated frequency.
func TestCascadeFilterConcentratesEnergyNearF1(t *testing.T) {
	const sampleRate = 16000.0
	const n = 4096

	c := NewCascadeFilter(sampleRate)
	var f Frame
	f.CF1, f.CB1 = 700, 60
	f.CF2, f.CB2 = 5000, 2000 // pushed out of the way
	f.CF3, f.CB3 = 6000, 2000
	f.CF4, f.CB4 = 6500, 2000
	f.CF5, f.CB5 = 7000, 2000
	f.CF6, f.CB6 = 7500, 2000
	f.CANP = 0

	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		in := 0.0
		if i%80 == 0 {
			in = 1.0
		}
		samples[i] = c.Next(f, in)
	}

	peak := spectralPeak(samples, sampleRate)
	require.InDelta(t, 700, peak, 250, "cascade output should peak near F1=700Hz, got %.0fHz", peak)
}
