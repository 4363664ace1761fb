// Package plan turns a tokenized IPA stream into a flat list of planned
// phonemes: syllable and word boundaries, post-stop aspiration units,
// pre-stop silence gaps, and the h-formant copy rule.
package plan

import (
	"github.com/gophone/speechplayer/ipa"
	"github.com/gophone/speechplayer/phoneme"
)

// Flag is a bitset of planning attributes attached to a Phoneme.
type Flag uint16

const (
	WordStart Flag = 1 << iota
	SyllableStart
	Lengthened
	PostStopAspiration
	PreStopGap
	Silence
	TiedTo
	TiedFrom
)

func (f Flag) Has(bit Flag) bool { return f&bit != 0 }

// Phoneme is one entry in the planned list: a copy of a descriptor's
// synthesis parameters plus planning attributes. Synthetic units
// (aspiration echoes, silence gaps) carry an empty Char. CopyAdjacent
// units (the literal h and its aspiration echoes) carry ParamsSet false
// until the h-copy pass fills them in.
type Phoneme struct {
	phoneme.Params
	Flags     Flag
	Stress    int
	Char      string
	ParamsSet bool

	// SetFields names the Params fields this unit's own descriptor row
	// wrote explicitly, carried over from phoneme.Descriptor.SetFields.
	// The h-copy pass consults it to avoid clobbering a field the unit
	// already set (even to 0) with a neighbor's value.
	SetFields map[string]bool

	IsVowel      bool
	IsVoiced     bool
	IsStop       bool
	IsAffricate  bool
	IsLiquid     bool
	IsSemivowel  bool
	IsNasal      bool
	IsTap        bool
	IsTrill      bool
	CopyAdjacent bool

	Duration     float64
	FadeDuration float64
}

func fromDescriptor(d phoneme.Descriptor) Phoneme {
	return Phoneme{
		Params:       d.Params,
		ParamsSet:    !d.CopyAdjacent,
		SetFields:    d.SetFields,
		Char:         d.Symbol,
		IsVowel:      d.IsVowel,
		IsVoiced:     d.IsVoiced,
		IsStop:       d.IsStop,
		IsAffricate:  d.IsAffricate,
		IsLiquid:     d.IsLiquid,
		IsSemivowel:  d.IsSemivowel,
		IsNasal:      d.IsNasal,
		IsTap:        d.IsTap,
		IsTrill:      d.IsTrill,
		CopyAdjacent: d.CopyAdjacent,
	}
}

// Plan walks tokens, maintaining newWord/lastPhoneme/syllableStartPhoneme
// state, and returns the flat planned list (syllable/word marking,
// post-stop aspiration, pre-stop gaps inserted, h-copy pass applied).
//
// The stress value a token carries is not necessarily recorded on that
// token: it is written onto whatever unit syllableStartPhoneme currently
// names, and that name can be reassigned earlier in the same iteration
// by the syllable-marking or word-start checks below. A word-initial
// consonant before a stressed vowel ends up holding wordStart,
// syllableStart and the stress value itself; the vowel does not. This
// mirrors the reference phonemizer's mutation order exactly, including
// the hazard it creates for anyone reading the two checks in isolation.
func Plan(tokens []ipa.Token, table phoneme.Table) []Phoneme {
	var out []Phoneme

	newWord := true
	lastIdx := -1 // index into out of the last real phoneme

	// syllableStartIdx names the unit that a later stress assignment
	// should land on. -2 is a sentinel meaning "the unit being built
	// this iteration", resolved to a real index once it's appended.
	syllableStartIdx := -1

	hDescriptor, hasH := table.Lookup("h")

	for _, tok := range tokens {
		if tok.WordBoundary {
			newWord = true
			continue
		}
		if tok.Descriptor == nil {
			// Unknown symbol: boundary hint only, otherwise skipped.
			continue
		}

		cur := fromDescriptor(*tok.Descriptor)
		stress := tok.Stress
		if tok.TiedTo {
			cur.Flags |= TiedTo
		}
		if tok.TiedFrom {
			cur.Flags |= TiedFrom
		}
		if tok.Lengthened {
			cur.Flags |= Lengthened
		}

		var last *Phoneme
		if lastIdx >= 0 {
			last = &out[lastIdx]
		}

		// Syllable marking.
		if last != nil && !last.IsVowel && cur.IsVowel {
			last.Flags |= SyllableStart
			syllableStartIdx = lastIdx
		} else if stress == 1 && last != nil && last.IsVowel {
			cur.Flags |= SyllableStart
			syllableStartIdx = -2
		}

		// Post-stop aspiration.
		if last != nil && last.IsStop && !last.IsVoiced && cur.IsVoiced && !cur.IsStop && !cur.IsAffricate {
			asp := Phoneme{Flags: PostStopAspiration}
			if hasH {
				asp.Params = hDescriptor.Params
				asp.CopyAdjacent = hDescriptor.CopyAdjacent
				asp.SetFields = hDescriptor.SetFields
				asp.ParamsSet = !hDescriptor.CopyAdjacent
			}
			out = append(out, asp)
			lastIdx = len(out) - 1
		}

		// Word start.
		if newWord {
			newWord = false
			cur.Flags |= WordStart | SyllableStart
			syllableStartIdx = -2
		}

		gapNeeded := false
		if stress != 0 {
			switch {
			case syllableStartIdx == -2:
				cur.Stress = stress
			case syllableStartIdx >= 0:
				out[syllableStartIdx].Stress = stress
			}
		} else if cur.IsStop || cur.IsAffricate {
			gapNeeded = true
		}

		if gapNeeded {
			out = append(out, Phoneme{Flags: PreStopGap | Silence, ParamsSet: true})
		}

		out = append(out, cur)
		lastIdx = len(out) - 1
		if syllableStartIdx == -2 {
			syllableStartIdx = lastIdx
		}
	}

	correctHPhonemes(out)
	return out
}

// correctHPhonemes is the h-copy pass: for any unit with CopyAdjacent
// set, copy synthesis parameters from the next non-silence unit, or if
// none, from the previous unit.
func correctHPhonemes(units []Phoneme) {
	for i := range units {
		if !units[i].CopyAdjacent {
			continue
		}
		if hasFormants(units[i]) {
			continue
		}
		if src, ok := nextNonSilence(units, i); ok {
			copyParams(&units[i], units[src])
			continue
		}
		if src, ok := prevNonSilence(units, i); ok {
			copyParams(&units[i], units[src])
		}
	}
}

func hasFormants(p Phoneme) bool {
	return p.CF1 != 0 || p.CF2 != 0 || p.CF3 != 0
}

func nextNonSilence(units []Phoneme, i int) (int, bool) {
	for j := i + 1; j < len(units); j++ {
		if !units[j].Flags.Has(Silence) {
			return j, true
		}
	}
	return 0, false
}

func prevNonSilence(units []Phoneme, i int) (int, bool) {
	for j := i - 1; j >= 0; j-- {
		if !units[j].Flags.Has(Silence) {
			return j, true
		}
	}
	return 0, false
}

// copyParams fills in the neighbor's synthesis parameters for every
// field dst's own descriptor left unset, leaving planning flags, stress,
// and any field dst already set (such as h's own aspirationAmplitude
// and voicePitch) untouched. This mirrors the original's dict-based
// "copy only absent keys" h-correction instead of a wholesale overwrite.
func copyParams(dst *Phoneme, src Phoneme) {
	set := dst.SetFields
	isSet := func(key string) bool { return set != nil && set[key] }

	if !isSet("voicePitch") {
		dst.VoicePitch = src.VoicePitch
	}
	if !isSet("vibratoPitchOffset") {
		dst.VibratoPitchOffset = src.VibratoPitchOffset
	}
	if !isSet("vibratoSpeed") {
		dst.VibratoSpeed = src.VibratoSpeed
	}
	if !isSet("voiceTurbulenceAmplitude") {
		dst.VoiceTurbulenceAmplitude = src.VoiceTurbulenceAmplitude
	}
	if !isSet("glottalOpenQuotient") {
		dst.GlottalOpenQuotient = src.GlottalOpenQuotient
	}
	if !isSet("voiceAmplitude") {
		dst.VoiceAmplitude = src.VoiceAmplitude
	}
	if !isSet("aspirationAmplitude") {
		dst.AspirationAmplitude = src.AspirationAmplitude
	}
	if !isSet("cf1") {
		dst.CF1 = src.CF1
	}
	if !isSet("cf2") {
		dst.CF2 = src.CF2
	}
	if !isSet("cf3") {
		dst.CF3 = src.CF3
	}
	if !isSet("cf4") {
		dst.CF4 = src.CF4
	}
	if !isSet("cf5") {
		dst.CF5 = src.CF5
	}
	if !isSet("cf6") {
		dst.CF6 = src.CF6
	}
	if !isSet("cfN0") {
		dst.CFN0 = src.CFN0
	}
	if !isSet("cfNP") {
		dst.CFNP = src.CFNP
	}
	if !isSet("cb1") {
		dst.CB1 = src.CB1
	}
	if !isSet("cb2") {
		dst.CB2 = src.CB2
	}
	if !isSet("cb3") {
		dst.CB3 = src.CB3
	}
	if !isSet("cb4") {
		dst.CB4 = src.CB4
	}
	if !isSet("cb5") {
		dst.CB5 = src.CB5
	}
	if !isSet("cb6") {
		dst.CB6 = src.CB6
	}
	if !isSet("cbN0") {
		dst.CBN0 = src.CBN0
	}
	if !isSet("cbNP") {
		dst.CBNP = src.CBNP
	}
	if !isSet("caNP") {
		dst.CANP = src.CANP
	}
	if !isSet("fricationAmplitude") {
		dst.FricationAmplitude = src.FricationAmplitude
	}
	if !isSet("pf1") {
		dst.PF1 = src.PF1
	}
	if !isSet("pf2") {
		dst.PF2 = src.PF2
	}
	if !isSet("pf3") {
		dst.PF3 = src.PF3
	}
	if !isSet("pf4") {
		dst.PF4 = src.PF4
	}
	if !isSet("pf5") {
		dst.PF5 = src.PF5
	}
	if !isSet("pf6") {
		dst.PF6 = src.PF6
	}
	if !isSet("pb1") {
		dst.PB1 = src.PB1
	}
	if !isSet("pb2") {
		dst.PB2 = src.PB2
	}
	if !isSet("pb3") {
		dst.PB3 = src.PB3
	}
	if !isSet("pb4") {
		dst.PB4 = src.PB4
	}
	if !isSet("pb5") {
		dst.PB5 = src.PB5
	}
	if !isSet("pb6") {
		dst.PB6 = src.PB6
	}
	if !isSet("pa1") {
		dst.PA1 = src.PA1
	}
	if !isSet("pa2") {
		dst.PA2 = src.PA2
	}
	if !isSet("pa3") {
		dst.PA3 = src.PA3
	}
	if !isSet("pa4") {
		dst.PA4 = src.PA4
	}
	if !isSet("pa5") {
		dst.PA5 = src.PA5
	}
	if !isSet("pa6") {
		dst.PA6 = src.PA6
	}
	if !isSet("parallelBypass") {
		dst.ParallelBypass = src.ParallelBypass
	}
	if !isSet("preFormantGain") {
		dst.PreFormantGain = src.PreFormantGain
	}
	if !isSet("outputGain") {
		dst.OutputGain = src.OutputGain
	}
	if !isSet("endVoicePitch") {
		dst.EndVoicePitch = src.EndVoicePitch
	}
	dst.ParamsSet = true
}
