// Package intonation computes per-frame pitch targets from a
// clause-type template (pre-head / head / nucleus / tail) with
// stressed/unstressed alternation.
package intonation

import (
	"math"

	"github.com/gophone/speechplayer/plan"
)

// ClauseType selects a fixed intonation parameter table.
type ClauseType string

const (
	Period       ClauseType = "."
	Comma        ClauseType = ","
	Question     ClauseType = "?"
	Exclamation  ClauseType = "!"
)

// params is one clause type's fixed set of pitch-contour percentages.
type params struct {
	preHeadStart, preHeadEnd                 float64
	headExtendFrom                           int
	headStart, headEnd                       float64
	headSteps                                []float64
	headStressEndDelta                       float64
	headUnstressedRunStartDelta              float64
	headUnstressedRunEndDelta                float64
	nucleus0Start, nucleus0End                float64
	nucleusStart, nucleusEnd                 float64
	tailStart, tailEnd                       float64
}

var table = map[ClauseType]params{
	Period: {
		preHeadStart: 46, preHeadEnd: 57,
		headExtendFrom: 4,
		headStart:      80, headEnd: 50,
		headSteps:                   []float64{100, 75, 50, 25, 0, 63, 38, 13, 0},
		headStressEndDelta:          -16,
		headUnstressedRunStartDelta: -8,
		headUnstressedRunEndDelta:   -5,
		nucleus0Start:               64, nucleus0End: 8,
		nucleusStart: 70, nucleusEnd: 18,
		tailStart: 24, tailEnd: 8,
	},
	Comma: {
		preHeadStart: 46, preHeadEnd: 57,
		headExtendFrom: 4,
		headStart:      80, headEnd: 60,
		headSteps:                   []float64{100, 75, 50, 25, 0, 63, 38, 13, 0},
		headStressEndDelta:          -16,
		headUnstressedRunStartDelta: -8,
		headUnstressedRunEndDelta:   -5,
		nucleus0Start:               34, nucleus0End: 52,
		nucleusStart: 78, nucleusEnd: 34,
		tailStart: 34, tailEnd: 52,
	},
	Question: {
		preHeadStart: 45, preHeadEnd: 56,
		headExtendFrom: 3,
		headStart:      75, headEnd: 43,
		headSteps:                   []float64{100, 75, 50, 20, 60, 35, 11, 0},
		headStressEndDelta:          -16,
		headUnstressedRunStartDelta: -7,
		headUnstressedRunEndDelta:   0,
		nucleus0Start:               34, nucleus0End: 68,
		nucleusStart: 86, nucleusEnd: 21,
		tailStart: 34, tailEnd: 68,
	},
	Exclamation: {
		preHeadStart: 46, preHeadEnd: 57,
		headExtendFrom: 3,
		headStart:      90, headEnd: 50,
		headSteps:                   []float64{100, 75, 50, 16, 82, 50, 32, 16},
		headStressEndDelta:          -16,
		headUnstressedRunStartDelta: -9,
		headUnstressedRunEndDelta:   0,
		nucleus0Start:               92, nucleus0End: 4,
		nucleusStart: 92, nucleusEnd: 80,
		tailStart: 76, tailEnd: 4,
	},
}

func lookup(c ClauseType) params {
	if p, ok := table[c]; ok {
		return p
	}
	return table[Period]
}

// Assign computes VoicePitch/EndVoicePitch for every phoneme in units
// given a base pitch (Hz), an inflection scalar, and a clause type.
// units must already carry durations (see package duration).
func Assign(units []plan.Phoneme, basePitch, inflection float64, clause ClauseType) {
	if len(units) == 0 {
		return
	}
	p := lookup(clause)

	preHeadEnd := len(units)
	for i := range units {
		if units[i].Flags.Has(plan.SyllableStart) && units[i].Stress == 1 {
			preHeadEnd = i
			break
		}
	}
	if preHeadEnd-0 > 0 {
		applyPitchPath(units, 0, preHeadEnd, basePitch, inflection, p.preHeadStart, p.preHeadEnd)
	}

	nucleusStart, nucleusEnd := len(units), len(units)
	tailStart, tailEnd := len(units), len(units)
	for i := len(units) - 1; i >= preHeadEnd; i-- {
		if units[i].Flags.Has(plan.SyllableStart) {
			if units[i].Stress == 1 {
				nucleusStart = i
				break
			}
			nucleusEnd, tailStart = i, i
		}
	}
	hasTail := tailEnd-tailStart > 0
	if hasTail {
		applyPitchPath(units, tailStart, tailEnd, basePitch, inflection, p.tailStart, p.tailEnd)
	}
	if nucleusEnd-nucleusStart > 0 {
		if hasTail {
			applyPitchPath(units, nucleusStart, nucleusEnd, basePitch, inflection, p.nucleusStart, p.nucleusEnd)
		} else {
			applyPitchPath(units, nucleusStart, nucleusEnd, basePitch, inflection, p.nucleus0Start, p.nucleus0End)
		}
	}

	if preHeadEnd < nucleusStart {
		assignHead(units, p, preHeadEnd, nucleusStart, basePitch, inflection)
	}
}

func assignHead(units []plan.Phoneme, p params, preHeadEnd, nucleusStart int, basePitch, inflection float64) {
	headStartPitch := p.headStart
	headEndPitch := p.headEnd

	lastHeadStressStart := -1
	lastHeadUnstressedRunStart := -1
	stressEndPitch := 0.0

	steps := p.headSteps
	extendFrom := p.headExtendFrom
	if extendFrom >= len(steps) {
		extendFrom = 0
	}
	cycleTail := steps[extendFrom:]
	stepIdx := 0
	nextStep := func() float64 {
		var v float64
		if stepIdx < len(steps) {
			v = steps[stepIdx]
		} else {
			v = cycleTail[(stepIdx-len(steps))%len(cycleTail)]
		}
		stepIdx++
		return v
	}

	end := nucleusStart
	if end >= len(units) {
		end = len(units) - 1
	}
	for i := preHeadEnd; i <= end; i++ {
		stressed := units[i].Stress == 1
		if units[i].Flags.Has(plan.SyllableStart) {
			if lastHeadStressStart >= 0 {
				step := nextStep()
				stressStartPitch := headEndPitch + ((headStartPitch-headEndPitch)/100.0)*step
				stressEndPitch = stressStartPitch + p.headStressEndDelta
				applyPitchPath(units, lastHeadStressStart, i, basePitch, inflection, stressStartPitch, stressEndPitch)
				lastHeadStressStart = -1
			}
			if stressed {
				if lastHeadUnstressedRunStart >= 0 {
					runStart := stressEndPitch + p.headUnstressedRunStartDelta
					runEnd := stressEndPitch + p.headUnstressedRunEndDelta
					applyPitchPath(units, lastHeadUnstressedRunStart, i, basePitch, inflection, runStart, runEnd)
					lastHeadUnstressedRunStart = -1
				}
				lastHeadStressStart = i
			} else if lastHeadUnstressedRunStart < 0 {
				lastHeadUnstressedRunStart = i
			}
		}
	}
}

// applyPitchPath sets VoicePitch/EndVoicePitch for every frame in
// [start, end) on a linear interpolation between two pitch percentages,
// weighted by cumulative voiced duration within the span.
func applyPitchPath(units []plan.Phoneme, start, end int, basePitch, inflection, startPct, endPct float64) {
	if start < 0 {
		start = 0
	}
	if end > len(units) {
		end = len(units)
	}
	if start >= end {
		return
	}

	startPitch := basePitch * math.Pow(2, ((startPct-50)/50.0)*inflection)
	endPitch := basePitch * math.Pow(2, ((endPct-50)/50.0)*inflection)

	voicedDuration := 0.0
	for i := start; i < end; i++ {
		if units[i].IsVoiced {
			voicedDuration += units[i].Duration
		}
	}

	curDuration := 0.0
	pitchDelta := endPitch - startPitch
	curPitch := startPitch

	for i := start; i < end; i++ {
		units[i].VoicePitch = curPitch
		if units[i].IsVoiced {
			curDuration += units[i].Duration
			ratio := 0.0
			if voicedDuration > 0 {
				ratio = curDuration / voicedDuration
			}
			curPitch = startPitch + pitchDelta*ratio
		}
		units[i].EndVoicePitch = curPitch
	}
}
