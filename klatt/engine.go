package klatt

import (
	"math"

	"github.com/gophone/speechplayer/queue"
)

const (
	fricationScale  = 0.175
	mainDCPole      = 0.9995
	int16Scale      = 5000
	int16Min        = -32767
	int16Max        = 32767
	highShelfFreq   = 2000
	highShelfGainDb = 6
	highShelfQ      = 0.7
)

// Engine is the sample-accurate DSP graph: it drains a frame queue and
// produces signed 16-bit PCM, applying cross-fade, pre-formant gain
// smoothing, the voice source, cascade/parallel filters, the high-shelf
// brightening filter, and the output DC blocker.
type Engine struct {
	sampleRate int

	q *queue.Queue

	glottal    *GlottalSource
	frication  *NoiseGenerator
	cascade    *CascadeFilter
	parallel   *ParallelFilter
	highShelf  *HighShelf
	dcBlocker  *DCBlocker

	prevFrame Frame
	curFrame  Frame
	curEmpty  bool
	prevEmpty bool

	remaining    int
	fadeTotal    int
	fadeElapsed  int
	curUserIndex int
	curHasIndex  bool

	smoothGain float64

	lastIndex    int
	hasLastIndex bool
}

// NewEngine builds an Engine that pulls frames from q at sampleRate Hz.
func NewEngine(q *queue.Queue, sampleRate int) *Engine {
	return &Engine{
		sampleRate: sampleRate,
		q:          q,
		glottal:    NewGlottalSource(float64(sampleRate)),
		frication:  NewNoiseGenerator(nil),
		cascade:    NewCascadeFilter(float64(sampleRate)),
		parallel:   NewParallelFilter(float64(sampleRate)),
		highShelf:  NewHighShelf(float64(sampleRate), highShelfFreq, highShelfGainDb, highShelfQ),
		dcBlocker:  NewDCBlocker(mainDCPole),
		curEmpty:   true,
		prevEmpty:  true,
	}
}

// Synthesize produces up to n samples of PCM, pulling entries from the
// frame queue as needed. It returns fewer than n samples only when the
// queue runs dry.
func (e *Engine) Synthesize(n int) []int16 {
	out := make([]int16, 0, n)
	for len(out) < n {
		if e.remaining <= 0 {
			if !e.advance() {
				break
			}
		}
		out = append(out, e.step())
		e.remaining--
	}
	return out
}

// advance pops the next queue entry and installs it as the current
// frame, snapping (not fading) across a purge. Returns false if the
// queue is empty.
func (e *Engine) advance() bool {
	entry, ok := e.q.Pop()
	if !ok {
		return false
	}

	if entry.Purge {
		e.prevEmpty = true
	} else {
		e.prevFrame = e.curFrame
		e.prevEmpty = e.curEmpty
	}

	if entry.Frame != nil {
		e.curFrame = *entry.Frame
		e.curEmpty = false
	} else {
		e.curFrame = Frame{}
		e.curEmpty = true
	}

	e.remaining = entry.MinSamples
	e.fadeTotal = entry.FadeSamples
	e.fadeElapsed = 0

	if entry.HasIndex {
		e.lastIndex = entry.UserIndex
		e.hasLastIndex = true
	}

	return true
}

// step produces one sample from the currently installed frame.
func (e *Engine) step() int16 {
	f := e.curFrame
	if e.fadeTotal > 0 && e.fadeElapsed < e.fadeTotal && !e.prevEmpty {
		ratio := float64(e.fadeElapsed) / float64(e.fadeTotal)
		f = lerpFrame(e.prevFrame, f, ratio)
	}
	e.fadeElapsed++

	if e.curEmpty {
		return 0
	}

	e.smoothGain = e.smoothPreGain(f.PreFormantGain)

	voiceSrc, glottisOpen := e.glottal.Next(f)
	casc := e.cascade.Next(f, voiceSrc*e.smoothGain)

	fric := e.frication.Next() * fricationScale * f.FricationAmplitude
	_ = glottisOpen
	par := e.parallel.Next(f, fric*e.smoothGain)

	mixed := (casc + par) * f.OutputGain
	filtered := e.dcBlocker.Apply(mixed)
	bright := e.highShelf.Apply(filtered)

	return clipInt16(bright * int16Scale)
}

// smoothPreGain applies a one-pole smoother to the target pre-formant
// gain, with a 1ms attack and 0.5ms release time constant.
func (e *Engine) smoothPreGain(target float64) float64 {
	var alpha float64
	if target > e.smoothGain {
		alpha = 1 - math.Exp(-1/(float64(e.sampleRate)*0.001))
	} else {
		alpha = 1 - math.Exp(-1/(float64(e.sampleRate)*0.0005))
	}
	return e.smoothGain + (target-e.smoothGain)*alpha
}

func clipInt16(v float64) int16 {
	if v > int16Max {
		return int16Max
	}
	if v < int16Min {
		return int16Min
	}
	return int16(v)
}

// LastIndex returns the most recently reported user index and clears
// it, or ok=false if none has been seen since the last call.
func (e *Engine) LastIndex() (idx int, ok bool) {
	if !e.hasLastIndex {
		return -1, false
	}
	idx = e.lastIndex
	e.hasLastIndex = false
	return idx, true
}
