package speechplayer

import "math"

// RateToSpeed maps a host rate control in [0,100] to the internal
// speed multiplier used by the duration engine.
func RateToSpeed(rate float64) float64 {
	return 0.25 * math.Pow(2, rate/25.0)
}

// PitchToBasePitch maps a host pitch control in [0,100] to a base
// pitch in Hz for the intonation engine.
func PitchToBasePitch(pitch float64) float64 {
	return 25.0 + 21.25*(pitch/12.5)
}

// VolumeToGain maps a host volume control in [0,100] to a linear gain
// factor (1.0 at 75). Player does not apply this factor to frames'
// preFormantGain; the caller applies it where it chooses (the demo host
// scales its PCM output by it).
func VolumeToGain(volume float64) float64 {
	return volume / 75.0
}

// InflectionToScalar maps a host inflection control in [0,100] to the
// inflection scalar the intonation engine expects.
func InflectionToScalar(inflection float64) float64 {
	return inflection * 0.01
}
