// Package duration assigns per-phoneme duration and fade time in
// milliseconds from phonetic class, stress, adjacency, and a speed
// multiplier.
package duration

import "github.com/gophone/speechplayer/plan"

const vowelFloorMs = 18.0

// Assign sets Duration and FadeDuration on each phoneme in units, given
// a base speed multiplier. Syllable speed is derived per syllable:
// primary stress divides speed by 1.25, secondary by 1.07, otherwise
// the base speed is used unchanged.
func Assign(units []plan.Phoneme, speed float64) {
	speeds := syllableSpeeds(units, speed)

	for i := range units {
		u := &units[i]
		sp := speeds[i]
		assignOne(u, units, i, sp)
	}
}

// syllableSpeeds computes, for each unit, the speed of the syllable it
// belongs to: a syllable's stress is carried forward from its
// SyllableStart marker to every following unit until the next one.
func syllableSpeeds(units []plan.Phoneme, base float64) []float64 {
	out := make([]float64, len(units))
	stress := 0
	for i := 0; i < len(units); i++ {
		if units[i].Flags.Has(plan.SyllableStart) {
			stress = units[i].Stress
		}
		switch stress {
		case 1:
			out[i] = base / 1.25
		case 2:
			out[i] = base / 1.07
		default:
			out[i] = base
		}
	}
	return out
}

func assignOne(u *plan.Phoneme, units []plan.Phoneme, i int, speed float64) {
	duration := 60.0 / speed
	fade := 10.0 / speed

	switch {
	case u.Flags.Has(plan.PreStopGap):
		duration = 41.0 / speed
		fade = 10.0 / speed
	case u.Flags.Has(plan.PostStopAspiration):
		duration = 20.0 / speed
		fade = 10.0 / speed
	case u.IsTrill:
		duration = 22.0 / speed
		fade = 0.001
	case u.IsTap:
		duration = min(14.0/speed, 14.0)
		fade = 0.001
	case u.IsStop:
		duration = min(6.0/speed, 6.0)
		fade = 0.001
	case u.IsAffricate:
		duration = 24.0 / speed
		fade = 0.001
	case !u.IsVoiced:
		duration = 45.0 / speed
		fade = 10.0 / speed
	case u.IsVowel && u.Flags.Has(plan.TiedTo):
		duration = 50.0 / speed
		fade = 10.0 / speed
	case u.IsVowel && u.Flags.Has(plan.TiedFrom):
		duration = 26.0 / speed
		fade = 10.0 / speed
	case u.IsVowel && u.Stress == 0 && !u.Flags.Has(plan.SyllableStart) && nextIsLiquidNotWordStart(units, i):
		duration = 45.0 / speed
		fade = 10.0 / speed
	case u.IsVowel && u.Stress == 0 && !u.Flags.Has(plan.SyllableStart) && nextIsNasalNotWordStart(units, i):
		duration = 50.0 / speed
		fade = 10.0 / speed
	case u.IsVowel && prevIsLiquidOrSemivowel(units, i):
		duration = 60.0 / speed
		fade = 25.0 / speed
	case !u.IsVowel:
		duration = 30.0 / speed
		if u.IsLiquid || u.IsSemivowel {
			fade = 12.0 / speed
		} else {
			fade = 10.0 / speed
		}
	}

	if u.Flags.Has(plan.Lengthened) {
		duration *= 1.05
	}
	if u.IsVowel && duration < vowelFloorMs {
		duration = vowelFloorMs
	}

	u.Duration = duration
	u.FadeDuration = fade
}

func nextIsLiquidNotWordStart(units []plan.Phoneme, i int) bool {
	if i+1 >= len(units) {
		return false
	}
	n := units[i+1]
	return n.IsLiquid && !n.Flags.Has(plan.WordStart)
}

func nextIsNasalNotWordStart(units []plan.Phoneme, i int) bool {
	if i+1 >= len(units) {
		return false
	}
	n := units[i+1]
	return n.IsNasal && !n.Flags.Has(plan.WordStart)
}

func prevIsLiquidOrSemivowel(units []plan.Phoneme, i int) bool {
	if i == 0 {
		return false
	}
	p := units[i-1]
	return p.IsLiquid || p.IsSemivowel
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
