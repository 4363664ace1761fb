package klatt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func voicedFrame() Frame {
	var f Frame
	f.VoicePitch = 120
	f.VoiceAmplitude = 1.0
	f.GlottalOpenQuotient = 0.4
	f.VoiceTurbulenceAmplitude = 0.1
	f.AspirationAmplitude = 0.0
	return f
}

func TestGlottalSourceProducesFiniteOutput(t *testing.T) {
	g := NewGlottalSource(SampleRate)
	f := voicedFrame()
	for i := 0; i < SampleRate; i++ {
		out, _ := g.Next(f)
		require.Falsef(t, math.IsNaN(out) || math.IsInf(out, 0), "sample %d diverged", i)
	}
}

func TestGlottalSourceCyclesOpenAndClosed(t *testing.T) {
	g := NewGlottalSource(SampleRate)
	f := voicedFrame()

	sawOpen, sawClosed := false, false
	for i := 0; i < SampleRate/10; i++ {
		_, open := g.Next(f)
		if open {
			sawOpen = true
		} else {
			sawClosed = true
		}
	}
	require.True(t, sawOpen, "glottis should open at least once at 120Hz over 100ms")
	require.True(t, sawClosed, "glottis should also close at least once")
}

func TestGlottalOpenQuotientClampedDefault(t *testing.T) {
	g := NewGlottalSource(SampleRate)
	f := voicedFrame()
	f.GlottalOpenQuotient = 0
	out, _ := g.Next(f)
	require.False(t, math.IsNaN(out))
}

func TestGlottalSourceSilentWhenPitchZero(t *testing.T) {
	g := NewGlottalSource(SampleRate)
	f := voicedFrame()
	f.VoicePitch = 0
	_, open := g.Next(f)
	require.False(t, open)
}
