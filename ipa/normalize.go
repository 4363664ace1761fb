// Package ipa normalizes and tokenizes IPA phoneme text: mnemonic
// ASCII and legacy diacritic variants come in, canonical IPA units
// keyed to a phoneme.Table go out.
package ipa

import (
	"strings"

	"github.com/gophone/speechplayer/phoneme"
)

// rhoticEnglish reports whether lang uses r-colored vowels for the
// mnemonic-table substitutions of step 5, the '0' mapping of step 6, and
// the trailing a->æ rule of step 8. The r->ɹ rule of step 8 applies to
// every English lang (see isEnglish).
func rhoticEnglish(lang string) bool {
	switch lang {
	case "en-us", "en-ca", "en-us-nyc":
		return true
	}
	return false
}

func isEnglish(lang string) bool {
	return strings.HasPrefix(lang, "en")
}

// tie-bar variants normalized to the canonical combining double
// inverted breve below, U+0361.
const canonicalTieBar = "͡"

var tieBarVariants = []string{"͜", "^", "̑"}

var wrapperPunct = strings.NewReplacer(
	"[", "", "]", "",
	"(", "", ")", "",
	"{", "", "}", "",
	"/", "", "\\", "",
)

// longestFirst substitution table for multi-character mnemonics,
// ordered longest-key-first so no shorter key shadows a longer one.
// Rhotic/non-rhotic English branches are chosen by the caller before
// this table is applied.
type substitution struct {
	from string
	to   string
}

// rhoticPick returns yes for rhotic General American-style lects and no
// otherwise, used for mnemonics whose target depends only on rhoticity.
func rhoticPick(rhotic bool, yes, no string) string {
	if rhotic {
		return yes
	}
	return no
}

func mnemonicTable(lang string) []substitution {
	rhotic := rhoticEnglish(lang)

	// Affricates and reduced/r-colored vowels apply regardless of
	// language; only their target varies with rhoticity.
	table := []substitution{
		{"t͡S", "t͡ʃ"},
		{"d͡Z", "d͡ʒ"},
		{"I2#", rhoticPick(rhotic, "ᵻ", "ɪ")},
		{"i@3", rhoticPick(rhotic, "ɪɹ", "ɪə")},
		{"tS", "t͡ʃ"},
		{"dZ", "d͡ʒ"},
		{"ts", "t͡s"},
		{"dz", "d͡z"},
		{"I2", "ɪ"},
		{"I#", rhoticPick(rhotic, "ᵻ", "ɪ")},
		{"e#", "ɛ"},
		{"@L", "əl"},
		{"i@", rhoticPick(rhotic, "ɪɹ", "ɪə")},
		{"e@", "eə"},
		{"U@", "ʊə"},
	}

	if isEnglish(lang) {
		if rhotic {
			table = append(table,
				substitution{"3ː", "ɝ"},
				substitution{"A@", "ɑɹ"},
				substitution{"O@", "ɔɹ"},
				substitution{"o@", "oɹ"},
				substitution{"3", "ɚ"},
			)
		} else {
			table = append(table,
				substitution{"3ː", "ɜ"},
				substitution{"A@", "ɑː"},
				substitution{"O@", "ɔː"},
				substitution{"o@", "ɔː"},
				substitution{"3", "ə"},
			)
		}
	}
	return table
}

var singleCharMap = map[rune]string{
	'@': "ə",
	'E': "ɛ",
	'O': "ɔ",
	'V': "ʌ",
	'U': "ʊ",
	'I': "ɪ",
	'A': "ɑ",
	'N': "ŋ",
	'S': "ʃ",
	'Z': "ʒ",
	'T': "θ",
	'D': "ð",
}

var crossLanguageFallback = strings.NewReplacer(
	"t͡ɕ", "t͡ʃ",
	"d͡ʑ", "d͡ʒ",
	"ɕ", "ʃ",
	"x", "h",
)

// Normalize canonicalizes text for language lang into the dictionary's
// IPA alphabet, against table (used to decide whether table-conditional
// fallbacks of step 7 apply). Normalize never fails: unknown symbols
// survive unchanged for the tokenizer to skip.
func Normalize(text string, lang string, table phoneme.Table) string {
	s := text

	// 1. tie-bar unification.
	for _, v := range tieBarVariants {
		s = strings.ReplaceAll(s, v, canonicalTieBar)
	}

	// 2. strip wrapper punctuation.
	s = wrapperPunct.Replace(s)

	// 3. remove utility codes.
	s = strings.ReplaceAll(s, "||", " ")
	s = strings.ReplaceAll(s, "|", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, "=", "")
	s = strings.ReplaceAll(s, "_:", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// 4. stress/length ASCII to IPA.
	s = strings.ReplaceAll(s, "'", "ˈ")
	s = strings.ReplaceAll(s, ",", "ˌ")
	s = strings.ReplaceAll(s, ":", "ː")

	// 5. longest-first multi-character mnemonics, language-conditional.
	for _, sub := range mnemonicTable(lang) {
		s = strings.ReplaceAll(s, sub.from, sub.to)
	}

	// 6. single-character ASCII map, with '0' conditional on rhoticity.
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '0' {
			if rhoticEnglish(lang) {
				b.WriteString("ɑ")
			} else {
				b.WriteString("ɒ")
			}
			continue
		}
		if rep, ok := singleCharMap[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	// 7. table-conditional fallbacks.
	s = strings.ReplaceAll(s, "˞", "ɹ")
	if _, ok := table.Lookup("ɚ"); ok {
		s = strings.ReplaceAll(s, "ɹ̩", "ɚ")
	} else {
		s = strings.ReplaceAll(s, "ɹ̩", "əɹ")
	}
	if _, ok := table.Lookup("ɚ"); !ok {
		s = strings.ReplaceAll(s, "ɚ", "əɹ")
	}
	if _, ok := table.Lookup("ɝ"); !ok {
		s = strings.ReplaceAll(s, "ɝ", "ɜɹ")
	}
	s = crossLanguageFallback.Replace(s)
	s = stripPrecomposedNasalVowels(s)

	// 8. English-specific final substitutions.
	if isEnglish(lang) {
		s = strings.ReplaceAll(s, "r", "ɹ")
	}
	if rhoticEnglish(lang) {
		s = strings.ReplaceAll(s, "a", "æ")
	}

	// 9. collapse whitespace.
	s = collapseWhitespace(s)

	return s
}

var precomposedNasalVowels = strings.NewReplacer(
	"ã", "a",
	"ẽ", "e",
	"ĩ", "i",
	"õ", "o",
	"ũ", "u",
)

func stripPrecomposedNasalVowels(s string) string {
	return precomposedNasalVowels.Replace(s)
}

func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
