package ipa

import (
	"github.com/gophone/speechplayer/phoneme"
)

// Token is one unit produced by Tokenize: the matched symbol (every code
// point of a multi-codepoint unit, such as "t͡ʃ" or "aː") or the single
// unmatched character, together with the matched descriptor, if any,
// and the diacritics attached to it.
type Token struct {
	Char        string
	Descriptor  *phoneme.Descriptor
	Stress      int
	TiedTo      bool
	TiedFrom    bool
	Lengthened  bool
	WordBoundary bool
}

const (
	tieBar  = "͡"
	lengthMark = "ː"
	primaryStress   = "ˈ"
	secondaryStress = "ˌ"
)

// Tokenize segments canonical IPA text into phoneme units, attaching
// stress, length, and tie-bar attributes. Unknown symbols are emitted
// as a Token with a nil Descriptor so the planner can treat them as a
// boundary hint or skip them.
func Tokenize(text string, table phoneme.Table) []Token {
	runes := []rune(text)
	n := len(runes)
	var tokens []Token

	pendingStress := 0
	pendingTiedFrom := false

	for i := 0; i < n; {
		r := runes[i]

		if r == ' ' {
			tokens = append(tokens, Token{Char: " ", WordBoundary: true})
			i++
			continue
		}
		if string(r) == primaryStress {
			pendingStress = 1
			i++
			continue
		}
		if string(r) == secondaryStress {
			pendingStress = 2
			i++
			continue
		}

		// Try 3-character lookup when followed by a tie bar.
		matched := false
		if i+2 < n && string(runes[i+1]) == tieBar {
			cand := string(runes[i : i+3])
			if d, ok := table.Lookup(cand); ok {
				lengthened := i+3 < n && string(runes[i+3]) == lengthMark
				adv := 3
				if lengthened {
					adv = 4
				}
				tokens = append(tokens, Token{
					Char:       cand,
					Descriptor: &d,
					Stress:     pendingStress,
					TiedFrom:   pendingTiedFrom,
					Lengthened: lengthened,
				})
				pendingStress = 0
				pendingTiedFrom = false
				i += adv
				matched = true
			}
		}
		if matched {
			continue
		}

		// Try 2-character lookup when followed by a length mark.
		if i+1 < n && string(runes[i+1]) == lengthMark {
			cand := string(runes[i : i+2])
			if d, ok := table.Lookup(cand); ok {
				tokens = append(tokens, Token{
					Char:       cand,
					Descriptor: &d,
					Stress:     pendingStress,
					TiedFrom:   pendingTiedFrom,
					Lengthened: true,
				})
				pendingStress = 0
				pendingTiedFrom = false
				i += 2
				continue
			}
		}

		// Single-character lookup, with a following tie bar marking
		// this unit as the start of a tied pair.
		cand := string(r)
		d, ok := table.Lookup(cand)
		if !ok {
			tokens = append(tokens, Token{Char: cand})
			i++
			continue
		}
		tiedTo := i+1 < n && string(runes[i+1]) == tieBar
		lengthened := i+1 < n && string(runes[i+1]) == lengthMark
		adv := 1
		if lengthened {
			adv = 2
		}
		tokens = append(tokens, Token{
			Char:       cand,
			Descriptor: &d,
			Stress:     pendingStress,
			TiedTo:     tiedTo,
			TiedFrom:   pendingTiedFrom,
			Lengthened: lengthened,
		})
		pendingStress = 0
		pendingTiedFrom = tiedTo
		i += adv
	}

	return tokens
}
