package klatt

import "math"

// CascadeFilter is the cascade formant filter bank: nasal zero/pole
// mixed in, then six formant resonators in series.
type CascadeFilter struct {
	rN0, rNP             *Resonator
	r1, r2, r3, r4, r5, r6 *Resonator
}

// NewCascadeFilter builds the cascade bank for the given sample rate.
func NewCascadeFilter(sampleRate float64) *CascadeFilter {
	return &CascadeFilter{
		rN0: NewResonator(sampleRate, true),
		rNP: NewResonator(sampleRate, false),
		r1:  NewResonator(sampleRate, false),
		r2:  NewResonator(sampleRate, false),
		r3:  NewResonator(sampleRate, false),
		r4:  NewResonator(sampleRate, false),
		r5:  NewResonator(sampleRate, false),
		r6:  NewResonator(sampleRate, false),
	}
}

// Next pushes in through the cascade bank, configured by f.
func (c *CascadeFilter) Next(f Frame, in float64) float64 {
	in = in / 2

	c.rN0.SetParams(f.CFN0, f.CBN0)
	n0 := c.rN0.Resonate(in)

	c.rNP.SetParams(f.CFNP, f.CBNP)
	out := lerp(in, c.rNP.Resonate(n0), f.CANP)

	c.r6.SetParams(f.CF6, f.CB6)
	out = c.r6.Resonate(out)
	c.r5.SetParams(f.CF5, f.CB5)
	out = c.r5.Resonate(out)
	c.r4.SetParams(f.CF4, f.CB4)
	out = c.r4.Resonate(out)
	c.r3.SetParams(f.CF3, f.CB3)
	out = c.r3.Resonate(out)
	c.r2.SetParams(f.CF2, f.CB2)
	out = c.r2.Resonate(out)
	c.r1.SetParams(f.CF1, f.CB1)
	out = c.r1.Resonate(out)

	return out
}

// ParallelFilter is the parallel formant filter bank: six resonators
// summed and weighted, with a bypass mix back to the dry input.
type ParallelFilter struct {
	r1, r2, r3, r4, r5, r6 *Resonator
}

// NewParallelFilter builds the parallel bank for the given sample rate.
func NewParallelFilter(sampleRate float64) *ParallelFilter {
	return &ParallelFilter{
		r1: NewResonator(sampleRate, false),
		r2: NewResonator(sampleRate, false),
		r3: NewResonator(sampleRate, false),
		r4: NewResonator(sampleRate, false),
		r5: NewResonator(sampleRate, false),
		r6: NewResonator(sampleRate, false),
	}
}

// Next pushes in through the parallel bank, configured by f.
func (p *ParallelFilter) Next(f Frame, in float64) float64 {
	in = in / 2

	p.r1.SetParams(f.PF1, f.PB1)
	p.r2.SetParams(f.PF2, f.PB2)
	p.r3.SetParams(f.PF3, f.PB3)
	p.r4.SetParams(f.PF4, f.PB4)
	p.r5.SetParams(f.PF5, f.PB5)
	p.r6.SetParams(f.PF6, f.PB6)

	sum := (p.r1.Resonate(in)-in)*f.PA1 +
		(p.r2.Resonate(in)-in)*f.PA2 +
		(p.r3.Resonate(in)-in)*f.PA3 +
		(p.r4.Resonate(in)-in)*f.PA4 +
		(p.r5.Resonate(in)-in)*f.PA5 +
		(p.r6.Resonate(in)-in)*f.PA6

	return lerp(sum, in, f.ParallelBypass)
}

// HighShelf is a fixed RBJ-style biquad high-shelf filter.
type HighShelf struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

// NewHighShelf builds a high-shelf filter with corner f0 (Hz), gainDb
// boost, and Q, for the given sample rate.
func NewHighShelf(sampleRate, f0, gainDb, q float64) *HighShelf {
	h := &HighShelf{}
	h.setParams(sampleRate, f0, gainDb, q)
	return h
}

func (h *HighShelf) setParams(sampleRate, f0, gainDb, q float64) {
	a := math.Pow(10, gainDb/40)
	w0 := 2 * math.Pi * f0 / sampleRate
	cosW0 := math.Cos(w0)
	sinW0 := math.Sin(w0)
	alpha := sinW0 / (2 * q)
	sqrtA := math.Sqrt(a)

	b0 := a * ((a + 1) + (a-1)*cosW0 + 2*sqrtA*alpha)
	b1 := -2 * a * ((a - 1) + (a+1)*cosW0)
	b2 := a * ((a + 1) + (a-1)*cosW0 - 2*sqrtA*alpha)
	a0 := (a + 1) - (a-1)*cosW0 + 2*sqrtA*alpha
	a1 := 2 * ((a - 1) - (a+1)*cosW0)
	a2 := (a + 1) - (a-1)*cosW0 - 2*sqrtA*alpha

	h.b0, h.b1, h.b2 = b0/a0, b1/a0, b2/a0
	h.a1, h.a2 = a1/a0, a2/a0
}

// Apply filters one sample.
func (h *HighShelf) Apply(x float64) float64 {
	y := h.b0*x + h.b1*h.x1 + h.b2*h.x2 - h.a1*h.y1 - h.a2*h.y2
	h.x2, h.x1 = h.x1, x
	h.y2, h.y1 = h.y1, y
	return y
}

// DCBlocker is a one-pole high-pass filter: y = x - lastX + pole*lastY.
type DCBlocker struct {
	pole       float64
	lastIn     float64
	lastOut    float64
}

// NewDCBlocker builds a DC blocker with the given pole (0.9995 in the
// engine's cascade/parallel mix stage and the glottal source).
func NewDCBlocker(pole float64) *DCBlocker {
	return &DCBlocker{pole: pole}
}

// Apply filters one sample.
func (d *DCBlocker) Apply(x float64) float64 {
	y := x - d.lastIn + d.pole*d.lastOut
	d.lastIn = x
	d.lastOut = y
	return y
}
