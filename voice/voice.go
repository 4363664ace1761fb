// Package voice applies named voice presets (absolute and multiplicative
// frame overrides) and external per-parameter slider scaling before a
// frame is enqueued.
package voice

import "github.com/gophone/speechplayer/plan"

// Preset overrides a subset of a frame's numeric parameters: Absolute
// entries replace a field outright, Mul entries scale it. Absolute
// overrides are applied first, then multipliers, matching the order
// preset application happens at enqueue time.
type Preset struct {
	Name     string
	Absolute map[string]float64
	Mul      map[string]float64
}

// fieldSetter reads/writes one named numeric field of a Phoneme's
// embedded Params block.
type fieldSetter struct {
	get func(*plan.Phoneme) float64
	set func(*plan.Phoneme, float64)
}

var fields = map[string]fieldSetter{
	"voicePitch":               {func(p *plan.Phoneme) float64 { return p.VoicePitch }, func(p *plan.Phoneme, v float64) { p.VoicePitch = v }},
	"vibratoPitchOffset":       {func(p *plan.Phoneme) float64 { return p.VibratoPitchOffset }, func(p *plan.Phoneme, v float64) { p.VibratoPitchOffset = v }},
	"vibratoSpeed":             {func(p *plan.Phoneme) float64 { return p.VibratoSpeed }, func(p *plan.Phoneme, v float64) { p.VibratoSpeed = v }},
	"voiceTurbulenceAmplitude": {func(p *plan.Phoneme) float64 { return p.VoiceTurbulenceAmplitude }, func(p *plan.Phoneme, v float64) { p.VoiceTurbulenceAmplitude = v }},
	"glottalOpenQuotient":      {func(p *plan.Phoneme) float64 { return p.GlottalOpenQuotient }, func(p *plan.Phoneme, v float64) { p.GlottalOpenQuotient = v }},
	"voiceAmplitude":           {func(p *plan.Phoneme) float64 { return p.VoiceAmplitude }, func(p *plan.Phoneme, v float64) { p.VoiceAmplitude = v }},
	"aspirationAmplitude":      {func(p *plan.Phoneme) float64 { return p.AspirationAmplitude }, func(p *plan.Phoneme, v float64) { p.AspirationAmplitude = v }},
	"cf1": {func(p *plan.Phoneme) float64 { return p.CF1 }, func(p *plan.Phoneme, v float64) { p.CF1 = v }},
	"cf2": {func(p *plan.Phoneme) float64 { return p.CF2 }, func(p *plan.Phoneme, v float64) { p.CF2 = v }},
	"cf3": {func(p *plan.Phoneme) float64 { return p.CF3 }, func(p *plan.Phoneme, v float64) { p.CF3 = v }},
	"cf4": {func(p *plan.Phoneme) float64 { return p.CF4 }, func(p *plan.Phoneme, v float64) { p.CF4 = v }},
	"cf5": {func(p *plan.Phoneme) float64 { return p.CF5 }, func(p *plan.Phoneme, v float64) { p.CF5 = v }},
	"cf6": {func(p *plan.Phoneme) float64 { return p.CF6 }, func(p *plan.Phoneme, v float64) { p.CF6 = v }},
	"cb1": {func(p *plan.Phoneme) float64 { return p.CB1 }, func(p *plan.Phoneme, v float64) { p.CB1 = v }},
	"cb2": {func(p *plan.Phoneme) float64 { return p.CB2 }, func(p *plan.Phoneme, v float64) { p.CB2 = v }},
	"cb3": {func(p *plan.Phoneme) float64 { return p.CB3 }, func(p *plan.Phoneme, v float64) { p.CB3 = v }},
	"cb4": {func(p *plan.Phoneme) float64 { return p.CB4 }, func(p *plan.Phoneme, v float64) { p.CB4 = v }},
	"cb5": {func(p *plan.Phoneme) float64 { return p.CB5 }, func(p *plan.Phoneme, v float64) { p.CB5 = v }},
	"cb6": {func(p *plan.Phoneme) float64 { return p.CB6 }, func(p *plan.Phoneme, v float64) { p.CB6 = v }},
	"fricationAmplitude": {func(p *plan.Phoneme) float64 { return p.FricationAmplitude }, func(p *plan.Phoneme, v float64) { p.FricationAmplitude = v }},
	"pa1": {func(p *plan.Phoneme) float64 { return p.PA1 }, func(p *plan.Phoneme, v float64) { p.PA1 = v }},
	"pa2": {func(p *plan.Phoneme) float64 { return p.PA2 }, func(p *plan.Phoneme, v float64) { p.PA2 = v }},
	"pa3": {func(p *plan.Phoneme) float64 { return p.PA3 }, func(p *plan.Phoneme, v float64) { p.PA3 = v }},
	"pa4": {func(p *plan.Phoneme) float64 { return p.PA4 }, func(p *plan.Phoneme, v float64) { p.PA4 = v }},
	"pa5": {func(p *plan.Phoneme) float64 { return p.PA5 }, func(p *plan.Phoneme, v float64) { p.PA5 = v }},
	"pa6": {func(p *plan.Phoneme) float64 { return p.PA6 }, func(p *plan.Phoneme, v float64) { p.PA6 = v }},
}

// Apply applies a preset's absolute overrides then its multipliers to
// phoneme p.
func (pr Preset) Apply(p *plan.Phoneme) {
	for name, v := range pr.Absolute {
		if f, ok := fields[name]; ok {
			f.set(p, v)
		}
	}
	for name, mul := range pr.Mul {
		if f, ok := fields[name]; ok {
			f.set(p, f.get(p)*mul)
		}
	}
}

// ApplyAll applies the preset to every phoneme in units.
func (pr Preset) ApplyAll(units []plan.Phoneme) {
	for i := range units {
		pr.Apply(&units[i])
	}
}

// DefaultPresets returns the built-in named voices.
func DefaultPresets() map[string]Preset {
	return map[string]Preset{
		"Adam": {
			Name: "Adam",
			Mul: map[string]float64{
				"cb1":                 1.3,
				"pa6":                 1.3,
				"fricationAmplitude":  0.85,
			},
		},
		"Benjamin": {
			Name: "Benjamin",
			Absolute: map[string]float64{
				"voicePitch": 80,
			},
			Mul: map[string]float64{
				"cf1": 0.94,
				"cf2": 0.94,
				"cf3": 0.94,
			},
		},
		"Caleb": {
			Name: "Caleb",
			Absolute: map[string]float64{
				"voicePitch":          70,
				"aspirationAmplitude": 0.4,
			},
			Mul: map[string]float64{
				"voiceTurbulenceAmplitude": 1.5,
			},
		},
		"David": {
			Name: "David",
			Mul: map[string]float64{
				"cf1": 1.08,
				"cf2": 1.08,
				"cf3": 1.08,
				"cf4": 1.08,
			},
		},
	}
}

// ExtraParams is a per-parameter slider map in [0,100]; 50 means "no
// change". Only amplitude-like fields are scaled (see DESIGN.md): the
// cascade/parallel frequency and bandwidth fields, gains, bypass mix,
// and nasal pole/zero coupling are excluded because uniform scaling of
// those is not meaningful.
type ExtraParams map[string]float64

var scalableFields = []string{
	"voiceAmplitude",
	"aspirationAmplitude",
	"fricationAmplitude",
	"voiceTurbulenceAmplitude",
	"pa1", "pa2", "pa3", "pa4", "pa5", "pa6",
}

// Apply scales each curated field of p by slider/50 where a slider
// value is present.
func (e ExtraParams) Apply(p *plan.Phoneme) {
	for _, name := range scalableFields {
		slider, ok := e[name]
		if !ok {
			continue
		}
		if f, ok := fields[name]; ok {
			f.set(p, f.get(p)*(slider/50.0))
		}
	}
}

// ApplyAll scales every phoneme in units.
func (e ExtraParams) ApplyAll(units []plan.Phoneme) {
	for i := range units {
		e.Apply(&units[i])
	}
}
