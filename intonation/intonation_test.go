package intonation

import (
	"testing"

	"github.com/gophone/speechplayer/plan"
	"github.com/stretchr/testify/require"
)

func syllable(stress int, durationMs float64) plan.Phoneme {
	return plan.Phoneme{
		IsVowel:  true,
		IsVoiced: true,
		Flags:    plan.SyllableStart,
		Stress:   stress,
		Duration: durationMs,
	}
}

func TestAssignSetsPitchOnEveryUnit(t *testing.T) {
	units := []plan.Phoneme{
		syllable(0, 60),
		syllable(1, 60),
		{IsVoiced: true, Duration: 30},
	}
	Assign(units, 100, 0.5, Period)

	for i, u := range units {
		require.NotZero(t, u.VoicePitch, "unit %d should have a pitch assigned", i)
	}
}

func TestLookupFallsBackToPeriod(t *testing.T) {
	require.Equal(t, table[Period], lookup(ClauseType("unknown")))
}

func TestQuestionNucleusRisesTowardEnd(t *testing.T) {
	units := []plan.Phoneme{
		syllable(1, 60),
		{IsVoiced: true, Duration: 40},
	}
	Assign(units, 100, 1.0, Question)

	p := table[Question]
	require.Greater(t, p.nucleus0End, p.nucleus0Start)
	require.NotZero(t, units[0].VoicePitch)
	require.Greater(t, units[1].EndVoicePitch, units[0].VoicePitch)
}

func TestAssignEmptyUnitsNoPanic(t *testing.T) {
	require.NotPanics(t, func() {
		Assign(nil, 100, 0.5, Period)
	})
}
