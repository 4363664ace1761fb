package voice

import (
	"testing"

	"github.com/gophone/speechplayer/plan"
	"github.com/stretchr/testify/require"
)

func TestPresetAppliesAbsoluteThenMultiplier(t *testing.T) {
	pr := Preset{
		Absolute: map[string]float64{"voicePitch": 80},
		Mul:      map[string]float64{"voicePitch": 2},
	}
	p := plan.Phoneme{}
	pr.Apply(&p)
	require.Equal(t, 160.0, p.VoicePitch)
}

func TestPresetUnknownFieldIgnored(t *testing.T) {
	pr := Preset{Absolute: map[string]float64{"notAField": 1}}
	p := plan.Phoneme{}
	require.NotPanics(t, func() { pr.Apply(&p) })
}

func TestDefaultPresetsAllResolveKnownFields(t *testing.T) {
	for _, pr := range DefaultPresets() {
		for name := range pr.Absolute {
			require.Containsf(t, fields, name, "preset %s", pr.Name)
		}
		for name := range pr.Mul {
			require.Containsf(t, fields, name, "preset %s", pr.Name)
		}
		p := plan.Phoneme{}
		pr.Apply(&p)
	}
}

func TestExtraParamsScalesCuratedFieldsOnly(t *testing.T) {
	p := plan.Phoneme{}
	p.VoiceAmplitude = 1.0
	p.CF1 = 500

	e := ExtraParams{"voiceAmplitude": 100, "cf1": 100}
	e.Apply(&p)

	require.Equal(t, 2.0, p.VoiceAmplitude)
	require.Equal(t, 500.0, p.CF1, "cf1 is not in the curated scalable set and must be untouched")
}

func TestExtraParamsFiftyIsNoChange(t *testing.T) {
	p := plan.Phoneme{}
	p.AspirationAmplitude = 0.3
	e := ExtraParams{"aspirationAmplitude": 50}
	e.Apply(&p)
	require.InDelta(t, 0.3, p.AspirationAmplitude, 1e-9)
}
