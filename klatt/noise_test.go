package klatt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoiseGeneratorDeterministicForSameSeed(t *testing.T) {
	a := NewNoiseGenerator(rand.NewSource(7))
	b := NewNoiseGenerator(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestFrequencyGeneratorWrapsToUnitInterval(t *testing.T) {
	f := NewFrequencyGenerator(100)
	var last float64
	for i := 0; i < 1000; i++ {
		last = f.Next(440)
		require.GreaterOrEqual(t, last, 0.0)
		require.Less(t, last, 1.0)
	}
	_ = last
}

func TestFrequencyGeneratorResetZeroesPhase(t *testing.T) {
	f := NewFrequencyGenerator(16000)
	f.Next(200)
	f.Reset()
	require.Equal(t, 0.0, f.Next(0))
}
