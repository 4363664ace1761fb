package duration

import (
	"testing"

	"github.com/gophone/speechplayer/plan"
	"github.com/stretchr/testify/require"
)

func vowel() plan.Phoneme {
	return plan.Phoneme{IsVowel: true, IsVoiced: true}
}

func TestAssignStopUsesCappedDuration(t *testing.T) {
	units := []plan.Phoneme{{IsStop: true, IsVoiced: false}}
	Assign(units, 1.0)
	require.Equal(t, 6.0, units[0].Duration)
	require.Equal(t, 0.001, units[0].FadeDuration)
}

func TestAssignPreStopGapPriorityBeatsUnvoiced(t *testing.T) {
	units := []plan.Phoneme{{Flags: plan.PreStopGap | plan.Silence}}
	Assign(units, 1.0)
	require.Equal(t, 41.0, units[0].Duration)
}

func TestAssignVowelFloorApplies(t *testing.T) {
	u := vowel()
	u.Flags = plan.SyllableStart
	units := []plan.Phoneme{u}
	Assign(units, 4.0)
	require.GreaterOrEqual(t, units[0].Duration, vowelFloorMs)
}

func TestAssignLengthenedMultiplier(t *testing.T) {
	plain := []plan.Phoneme{{IsVowel: true, IsVoiced: true, Flags: plan.SyllableStart}}
	Assign(plain, 1.0)

	lengthened := []plan.Phoneme{{IsVowel: true, IsVoiced: true, Flags: plan.SyllableStart | plan.Lengthened}}
	Assign(lengthened, 1.0)

	require.InDelta(t, plain[0].Duration*1.05, lengthened[0].Duration, 1e-9)
}

func TestSyllableSpeedsAppliesStressDivisor(t *testing.T) {
	units := []plan.Phoneme{
		{IsVowel: true, IsVoiced: true, Flags: plan.SyllableStart, Stress: 1},
		{IsNasal: true, IsVoiced: true},
	}
	speeds := syllableSpeeds(units, 1.0)
	require.InDelta(t, 1.0/1.25, speeds[0], 1e-9)
	require.InDelta(t, 1.0/1.25, speeds[1], 1e-9)
}
