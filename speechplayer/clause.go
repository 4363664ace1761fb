package speechplayer

import (
	"regexp"
	"strings"

	"github.com/gophone/speechplayer/intonation"
)

// clauseSplit matches a clause-ending punctuation mark followed by
// whitespace, the same boundary the driver uses to chunk an utterance
// into separately-intonated clauses.
var clauseSplit = regexp.MustCompile(`(?:[.?!,:;])\s+`)

// Clause is one chunk of an utterance with its terminating punctuation
// resolved to a ClauseType.
type Clause struct {
	Text  string
	Type  intonation.ClauseType
	EndPauseMs float64
}

// SplitClauses splits text on clause-ending punctuation, inferring each
// clause's ClauseType from its trailing character and an end-of-clause
// pause duration (150ms for a full stop/question/exclamation, 120ms for
// a comma, 100ms otherwise).
func SplitClauses(text string) []Clause {
	// Cut after each matched punctuation mark (a single byte) so every
	// clause keeps its own terminator.
	var parts []string
	start := 0
	for _, m := range clauseSplit.FindAllStringIndex(text, -1) {
		parts = append(parts, text[start:m[0]+1])
		start = m[1]
	}
	parts = append(parts, text[start:])
	var clauses []Clause
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		clauses = append(clauses, Clause{
			Text:       p,
			Type:       clauseTypeOf(p),
			EndPauseMs: endPauseOf(p),
		})
	}
	return clauses
}

func clauseTypeOf(text string) intonation.ClauseType {
	if text == "" {
		return intonation.Period
	}
	switch text[len(text)-1] {
	case '?':
		return intonation.Question
	case '!':
		return intonation.Exclamation
	case ',':
		return intonation.Comma
	default:
		return intonation.Period
	}
}

func endPauseOf(text string) float64 {
	if text == "" {
		return 100
	}
	switch text[len(text)-1] {
	case '.', '?', '!':
		return 150
	case ',':
		return 120
	default:
		return 100
	}
}
