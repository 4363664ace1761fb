package plan

import (
	"testing"

	"github.com/gophone/speechplayer/ipa"
	"github.com/gophone/speechplayer/phoneme"
	"github.com/stretchr/testify/require"
)

// scenario 2 from the testable-properties boundary list: "ˈkæt" on
// en-us. The leading k carries the word's wordStart/syllableStart/stress
// (it's the syllable start the stress marker lands on, not the vowel
// that follows it); æ carries none of the three; t gets a pre-stop gap
// since it receives no stress of its own.
func TestPlanKaetBoundaryScenario(t *testing.T) {
	table := phoneme.Default()
	text := ipa.Normalize("ˈkæt", "en-us", table)
	tokens := ipa.Tokenize(text, table)
	units := Plan(tokens, table)

	require.NotEmpty(t, units)

	var stopIdx, vowelIdx, secondGapIdx, secondStopIdx = -1, -1, -1, -1
	for i, u := range units {
		switch {
		case u.Char == "k" && stopIdx < 0:
			stopIdx = i
		case u.Char == "æ" && vowelIdx < 0:
			vowelIdx = i
		case u.Char == "t" && secondStopIdx < 0:
			secondStopIdx = i
			secondGapIdx = i - 1
		}
	}
	require.GreaterOrEqual(t, stopIdx, 0)
	require.GreaterOrEqual(t, vowelIdx, 0)
	require.GreaterOrEqual(t, secondStopIdx, 0)

	require.True(t, units[stopIdx].Flags.Has(WordStart))
	require.True(t, units[stopIdx].Flags.Has(SyllableStart))
	require.Equal(t, 1, units[stopIdx].Stress)

	require.False(t, units[vowelIdx].Flags.Has(WordStart))
	require.False(t, units[vowelIdx].Flags.Has(SyllableStart))

	require.GreaterOrEqual(t, secondGapIdx, 0)
	require.True(t, units[secondGapIdx].Flags.Has(PreStopGap))
}

// Invariant: for every stop followed by a voiced non-stop/non-affricate,
// an aspiration frame exists between them in the planned list.
func TestPlanPostStopAspirationInserted(t *testing.T) {
	table := phoneme.Default()
	text := ipa.Normalize("ˈkæt", "en-us", table)
	tokens := ipa.Tokenize(text, table)
	units := Plan(tokens, table)

	found := false
	for i := 1; i+1 < len(units); i++ {
		if units[i].Flags.Has(PostStopAspiration) && units[i-1].Char == "k" && units[i+1].Char == "æ" {
			found = true
		}
	}
	require.True(t, found, "expected an aspiration unit between k and æ")
}

// Invariant: every wordStart count matches the number of whitespace
// separated tokens ("ˈa ˈa" has two words).
func TestPlanWordStartCountMatchesWords(t *testing.T) {
	table := phoneme.Default()
	text := ipa.Normalize("ˈa ˈa", "en-us", table)
	tokens := ipa.Tokenize(text, table)
	units := Plan(tokens, table)

	count := 0
	for _, u := range units {
		if u.Flags.Has(WordStart) {
			count++
		}
	}
	require.Equal(t, 2, count)
}

// Invariant: after the h-copy pass, no copyAdjacent unit retains a
// default (zero) formant set if a non-silence neighbor exists.
func TestHCopyPassFillsFormants(t *testing.T) {
	table := phoneme.Default()
	text := ipa.Normalize("ˈhɛloʊ", "en-us", table)
	tokens := ipa.Tokenize(text, table)
	units := Plan(tokens, table)

	for _, u := range units {
		if u.CopyAdjacent {
			require.True(t, hasFormants(u), "copyAdjacent unit should inherit neighbor formants")
		}
	}
}

// Invariant: the h-copy pass fills in the neighbor's formants without
// clobbering h's own aspirationAmplitude, which a wholesale param copy
// would zero out (the neighbor vowel doesn't aspirate).
func TestHCopyPassPreservesOwnAspiration(t *testing.T) {
	table := phoneme.Default()
	text := ipa.Normalize("ˈhɛloʊ", "en-us", table)
	tokens := ipa.Tokenize(text, table)
	units := Plan(tokens, table)

	hDescriptor, ok := table.Lookup("h")
	require.True(t, ok)

	found := false
	for _, u := range units {
		if u.CopyAdjacent && u.Char == "h" {
			found = true
			require.Equal(t, hDescriptor.AspirationAmplitude, u.AspirationAmplitude)
			require.Equal(t, hDescriptor.VoicePitch, u.VoicePitch)
			require.NotZero(t, u.CF1, "h should inherit the following vowel's formants")
		}
	}
	require.True(t, found, "expected the leading h to survive planning")
}
