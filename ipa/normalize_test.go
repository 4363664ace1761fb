package ipa

import (
	"testing"

	"github.com/gophone/speechplayer/phoneme"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdempotent(t *testing.T) {
	table := phoneme.Default()
	cases := []string{
		"'hEloU",
		"'kœt",
		"ˈhɛloʊ",
		"rabbit",
		"3ːpVp",
	}
	for _, lang := range []string{"en-us", "en", "es"} {
		for _, c := range cases {
			once := Normalize(c, lang, table)
			twice := Normalize(once, lang, table)
			require.Equalf(t, once, twice, "lang=%s input=%q", lang, c)
		}
	}
}

func TestNormalizeMnemonicRhoticVsNonRhotic(t *testing.T) {
	table := phoneme.Default()
	require.Contains(t, Normalize("b3ːd", "en-us", table), "ɝ")
	require.Contains(t, Normalize("b3ːd", "en", table), "ɜ")
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	table := phoneme.Default()
	got := Normalize("ˈhɛ    loʊ", "en-us", table)
	require.Equal(t, "ˈhɛ loʊ", got)
}

func TestNormalizeStressAndLength(t *testing.T) {
	table := phoneme.Default()
	got := Normalize("'a:", "en", table)
	require.Contains(t, got, "ˈ")
	require.Contains(t, got, "ː")
}

func TestNormalizeAffricateMnemonics(t *testing.T) {
	table := phoneme.Default()
	require.Contains(t, Normalize("tSip", "en-us", table), "t͡ʃ")
	require.Contains(t, Normalize("dZVd", "en-us", table), "d͡ʒ")
	require.Contains(t, Normalize("hIts", "es", table), "t͡s")
}

func TestNormalizeReducedVowelMnemonicsAreLanguageIndependent(t *testing.T) {
	table := phoneme.Default()
	require.Contains(t, Normalize("r@bI2t", "es", table), "ɪ")
	require.Contains(t, Normalize("@L", "es", table), "əl")
}
