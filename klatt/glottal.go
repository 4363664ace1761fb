package klatt

import "math"

const glottalDCPole = 0.9995

// GlottalSource is the engine voice-source model: a vibrato-modulated
// glottal-flow oscillator with a cosine-shaped open phase, mixed with
// aspiration turbulence and passed through a DC blocker.
type GlottalSource struct {
	sampleRate float64

	vibratoPhase float64
	pitchGen     *FrequencyGenerator
	noise        *NoiseGenerator

	lastFlow    float64
	lastIn      float64
	lastOut     float64
}

// NewGlottalSource builds a glottal source for the given sample rate.
func NewGlottalSource(sampleRate float64) *GlottalSource {
	return &GlottalSource{
		sampleRate: sampleRate,
		pitchGen:   NewFrequencyGenerator(sampleRate),
		noise:      NewNoiseGenerator(nil),
	}
}

// Next returns the next glottal source sample (including aspiration),
// given the current frame's parameters. It also reports whether the
// glottis is currently open, for callers that gate other noise sources
// on voicing.
func (g *GlottalSource) Next(f Frame) (sample float64, open bool) {
	vibrato := 1.0 + 0.06*f.VibratoPitchOffset*math.Sin(g.vibratoPhase*2*math.Pi)
	vibratoFreq := f.VibratoSpeed
	g.vibratoPhase += vibratoFreq / g.sampleRate
	g.vibratoPhase -= math.Floor(g.vibratoPhase)

	pitchHz := f.VoicePitch * vibrato
	cyclePos := g.pitchGen.Next(pitchHz)

	aspiration := g.noise.Next() * 0.1

	q := f.GlottalOpenQuotient
	if q <= 0 {
		q = 0.4
	}
	if q < 0.10 {
		q = 0.10
	}
	if q > 0.95 {
		q = 0.95
	}

	glottisOpen := pitchHz > 0 && cyclePos >= q

	var flow float64
	if glottisOpen {
		openLen := math.Max(1e-4, 1-q)
		dt := 0.0
		if pitchHz > 0 {
			dt = pitchHz / g.sampleRate
		}
		phase := (cyclePos - q) / math.Max(1e-4, openLen-dt)
		if phase < 0 {
			phase = 0
		}
		if phase > 1 {
			phase = 1
		}

		peakPos := 0.90
		if pitchHz > 0 {
			periodSamples := g.sampleRate / pitchHz
			minClosedFrac := 2.0 / math.Max(1, periodSamples*openLen)
			maxPeakPos := 1 - minClosedFrac
			if maxPeakPos < peakPos {
				peakPos = maxPeakPos
			}
		}
		if peakPos < 0.50 {
			peakPos = 0.50
		}
		if peakPos > 0.90 {
			peakPos = 0.90
		}

		if phase < peakPos {
			flow = 0.5 * (1 - math.Cos(phase*math.Pi/peakPos))
		} else {
			flow = 0.5 * (1 + math.Cos((phase-peakPos)*math.Pi/(1-peakPos)))
		}
		flow *= 1.6
	}

	dFlow := flow - g.lastFlow
	g.lastFlow = flow
	voicedSrc := flow + dFlow

	turbulence := 0.0
	if glottisOpen {
		flow01 := flow / 1.6
		if flow01 < 0 {
			flow01 = 0
		}
		if flow01 > 1 {
			flow01 = 1
		}
		turbulence = aspiration * f.VoiceTurbulenceAmplitude * flow01
	}

	voicedIn := (voicedSrc + turbulence) * f.VoiceAmplitude

	voiced := voicedIn - g.lastIn + glottalDCPole*g.lastOut
	g.lastIn = voicedIn
	g.lastOut = voiced

	aspOut := aspiration * f.AspirationAmplitude

	return aspOut + voiced, glottisOpen
}
