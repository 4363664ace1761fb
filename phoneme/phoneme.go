// Package phoneme defines the synthesis parameter table that drives the
// IPA planner and the Klatt engine: one Descriptor per phoneme symbol,
// carrying both the class flags the planner needs and the numeric frame
// fields the engine needs.
package phoneme

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Params holds the numeric synthesis parameters shared by a phoneme
// descriptor and a fully assembled frame. Field order matches the
// ctypes Frame layout of the driver this table was built against, so a
// Params value can be copied straight into a klatt.Frame's same-named
// fields.
type Params struct {
	VoicePitch               float64 `yaml:"voicePitch"`
	VibratoPitchOffset       float64 `yaml:"vibratoPitchOffset"`
	VibratoSpeed             float64 `yaml:"vibratoSpeed"`
	VoiceTurbulenceAmplitude float64 `yaml:"voiceTurbulenceAmplitude"`
	GlottalOpenQuotient      float64 `yaml:"glottalOpenQuotient"`
	VoiceAmplitude           float64 `yaml:"voiceAmplitude"`
	AspirationAmplitude      float64 `yaml:"aspirationAmplitude"`
	CF1                      float64 `yaml:"cf1"`
	CF2                      float64 `yaml:"cf2"`
	CF3                      float64 `yaml:"cf3"`
	CF4                      float64 `yaml:"cf4"`
	CF5                      float64 `yaml:"cf5"`
	CF6                      float64 `yaml:"cf6"`
	CFN0                     float64 `yaml:"cfN0"`
	CFNP                     float64 `yaml:"cfNP"`
	CB1                      float64 `yaml:"cb1"`
	CB2                      float64 `yaml:"cb2"`
	CB3                      float64 `yaml:"cb3"`
	CB4                      float64 `yaml:"cb4"`
	CB5                      float64 `yaml:"cb5"`
	CB6                      float64 `yaml:"cb6"`
	CBN0                     float64 `yaml:"cbN0"`
	CBNP                     float64 `yaml:"cbNP"`
	CANP                     float64 `yaml:"caNP"`
	FricationAmplitude       float64 `yaml:"fricationAmplitude"`
	PF1                      float64 `yaml:"pf1"`
	PF2                      float64 `yaml:"pf2"`
	PF3                      float64 `yaml:"pf3"`
	PF4                      float64 `yaml:"pf4"`
	PF5                      float64 `yaml:"pf5"`
	PF6                      float64 `yaml:"pf6"`
	PB1                      float64 `yaml:"pb1"`
	PB2                      float64 `yaml:"pb2"`
	PB3                      float64 `yaml:"pb3"`
	PB4                      float64 `yaml:"pb4"`
	PB5                      float64 `yaml:"pb5"`
	PB6                      float64 `yaml:"pb6"`
	PA1                      float64 `yaml:"pa1"`
	PA2                      float64 `yaml:"pa2"`
	PA3                      float64 `yaml:"pa3"`
	PA4                      float64 `yaml:"pa4"`
	PA5                      float64 `yaml:"pa5"`
	PA6                      float64 `yaml:"pa6"`
	ParallelBypass           float64 `yaml:"parallelBypass"`
	PreFormantGain           float64 `yaml:"preFormantGain"`
	OutputGain               float64 `yaml:"outputGain"`
	EndVoicePitch            float64 `yaml:"endVoicePitch"`
}

// Descriptor is one row of the phoneme table: a Params block plus the
// class flags the planner consults to decide syllable/word boundaries,
// aspiration, and gap insertion.
type Descriptor struct {
	Symbol        string `yaml:"symbol"`
	Params        `yaml:",inline"`
	IsVowel       bool `yaml:"isVowel"`
	IsVoiced      bool `yaml:"isVoiced"`
	IsStop        bool `yaml:"isStop"`
	IsAffricate   bool `yaml:"isAffricate"`
	IsLiquid      bool `yaml:"isLiquid"`
	IsSemivowel   bool `yaml:"isSemivowel"`
	IsNasal       bool `yaml:"isNasal"`
	IsTap         bool `yaml:"isTap"`
	IsTrill       bool `yaml:"isTrill"`
	CopyAdjacent  bool `yaml:"copyAdjacent"`

	// SetFields records which yaml keys this entry's source row actually
	// wrote, keyed by the Params field's yaml tag. A copyAdjacent unit's
	// h-copy pass uses it to tell "explicitly 0" (voicePitch: 0 on h)
	// from "never mentioned" (every cf/cb field on h).
	SetFields map[string]bool `yaml:"-"`
}

// Table maps an IPA symbol to its Descriptor. A Table is immutable once
// returned by LoadTable: callers needing a modified entry copy the
// Descriptor by value.
type Table map[string]Descriptor

//go:embed data/phonemes.yaml
var defaultTableYAML []byte

var (
	defaultOnce  sync.Once
	defaultTable Table
	defaultErr   error
)

// Default returns the package's embedded phoneme table, parsed once.
func Default() Table {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = parse(defaultTableYAML)
	})
	if defaultErr != nil {
		panic(fmt.Errorf("phoneme: embedded table is invalid: %w", defaultErr))
	}
	return defaultTable
}

type tableFile struct {
	Phonemes []Descriptor `yaml:"phonemes"`
}

// rawTableFile mirrors tableFile but decodes each phoneme row into a
// plain map so parse can record which keys were actually present,
// independent of the zero value a missing key decodes to.
type rawTableFile struct {
	Phonemes []map[string]interface{} `yaml:"phonemes"`
}

func parse(data []byte) (Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("phoneme: parse table: %w", err)
	}
	var raw rawTableFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("phoneme: parse table: %w", err)
	}
	t := make(Table, len(f.Phonemes))
	for i, d := range f.Phonemes {
		if d.Symbol == "" {
			return nil, fmt.Errorf("phoneme: table entry missing symbol")
		}
		if i < len(raw.Phonemes) {
			d.SetFields = make(map[string]bool, len(raw.Phonemes[i]))
			for k := range raw.Phonemes[i] {
				d.SetFields[k] = true
			}
		}
		t[d.Symbol] = d
	}
	return t, nil
}

// LoadTable parses a phoneme table in the same YAML shape as the
// embedded default, for hosts that want to supply their own.
func LoadTable(data []byte) (Table, error) {
	return parse(data)
}

// Lookup returns the descriptor for sym and whether it was found.
func (t Table) Lookup(sym string) (Descriptor, bool) {
	d, ok := t[sym]
	return d, ok
}
