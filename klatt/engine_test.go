package klatt

import (
	"math"
	"testing"

	"github.com/gophone/speechplayer/phoneme"
	"github.com/gophone/speechplayer/queue"
	"github.com/stretchr/testify/require"
)

func pushVowelFrame(q *queue.Queue, ms int, userIndex int, hasIndex bool) {
	var f phoneme.Params
	f.VoicePitch = 120
	f.VoiceAmplitude = 1.0
	f.GlottalOpenQuotient = 0.4
	f.CF1, f.CB1 = 700, 80
	f.CF2, f.CB2 = 1200, 90
	f.CF3, f.CB3 = 2500, 120
	f.PreFormantGain = 1.0
	f.OutputGain = 1.0
	q.Push(queue.Entry{
		Frame:       &f,
		MinSamples:  queue.MsToSamples(float64(ms), SampleRate),
		FadeSamples: queue.MsToSamples(5, SampleRate),
		UserIndex:   userIndex,
		HasIndex:    hasIndex,
	})
}

func TestEngineSynthesizeProducesRequestedLength(t *testing.T) {
	q := queue.New()
	pushVowelFrame(q, 50, 0, false)
	e := NewEngine(q, SampleRate)

	out := e.Synthesize(queue.MsToSamples(50, SampleRate))
	require.Len(t, out, queue.MsToSamples(50, SampleRate))
}

func TestEngineSynthesizeStopsWhenQueueDrains(t *testing.T) {
	q := queue.New()
	pushVowelFrame(q, 10, 0, false)
	e := NewEngine(q, SampleRate)

	out := e.Synthesize(queue.MsToSamples(1000, SampleRate))
	require.Less(t, len(out), queue.MsToSamples(1000, SampleRate))
}

func TestEngineOutputStaysWithinInt16Range(t *testing.T) {
	q := queue.New()
	pushVowelFrame(q, 200, 0, false)
	e := NewEngine(q, SampleRate)

	out := e.Synthesize(queue.MsToSamples(200, SampleRate))
	for _, s := range out {
		require.False(t, math.IsNaN(float64(s)))
		require.GreaterOrEqual(t, int(s), int16Min)
	}
}

func TestEngineReportsUserIndexOnce(t *testing.T) {
	q := queue.New()
	pushVowelFrame(q, 10, 42, true)
	e := NewEngine(q, SampleRate)

	e.Synthesize(queue.MsToSamples(10, SampleRate))
	idx, ok := e.LastIndex()
	require.True(t, ok)
	require.Equal(t, 42, idx)

	_, ok = e.LastIndex()
	require.False(t, ok, "index should clear after being read once")
}

func TestClipInt16BoundsOutput(t *testing.T) {
	require.Equal(t, int16(int16Max), clipInt16(1e9))
	require.Equal(t, int16(int16Min), clipInt16(-1e9))
	require.Equal(t, int16(100), clipInt16(100))
}
