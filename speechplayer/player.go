// Package speechplayer orchestrates the planner and DSP engine behind
// the host-facing entry points: Speak, Cancel, Pause/Resume, and the
// pull-based Synthesize/LastIndex pair the host's audio thread
// drives.
package speechplayer

import (
	"context"
	"sync"

	"github.com/gophone/speechplayer/duration"
	"github.com/gophone/speechplayer/intonation"
	"github.com/gophone/speechplayer/ipa"
	"github.com/gophone/speechplayer/klatt"
	"github.com/gophone/speechplayer/phoneme"
	"github.com/gophone/speechplayer/plan"
	"github.com/gophone/speechplayer/queue"
	"github.com/gophone/speechplayer/voice"
)

// SpeakRequest is one utterance handed to the planner.
type SpeakRequest struct {
	Text        string
	Language    string
	Speed       float64
	BasePitch   float64
	Inflection  float64
	Preset      *voice.Preset
	Extra       voice.ExtraParams
	UserIndex   int
	HasIndex    bool
}

// Player ties the planner goroutine, frame queue, and DSP engine
// together. The caller drives Synthesize/LastIndex from its own
// audio thread; Speak/Cancel/Pause/Resume are safe to call from any
// goroutine.
type Player struct {
	table phoneme.Table

	queue  *queue.Queue
	engine *klatt.Engine

	requests chan SpeakRequest
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	pauseMu sync.Mutex
	paused  bool
}

// New builds a Player using table for phoneme lookups (phoneme.Default()
// if table is nil) and klatt.SampleRate for the DSP engine.
func New(table phoneme.Table) *Player {
	if table == nil {
		table = phoneme.Default()
	}
	q := queue.New()
	ctx, cancel := context.WithCancel(context.Background())

	p := &Player{
		table:    table,
		queue:    q,
		engine:   klatt.NewEngine(q, klatt.SampleRate),
		requests: make(chan SpeakRequest, 16),
		cancel:   cancel,
	}

	p.wg.Add(1)
	go p.plannerLoop(ctx)
	return p
}

// Speak enqueues an utterance for the planner. Speak never blocks on
// the DSP engine.
func (p *Player) Speak(req SpeakRequest) {
	p.requests <- req
}

// Cancel purges the frame queue and enqueues a terminal silence; the
// DSP loop observes the purge at the next entry boundary. Outstanding
// planner work for other utterances is unaffected.
func (p *Player) Cancel() {
	p.queue.Push(queue.Entry{
		MinSamples:  queue.MsToSamples(20, klatt.SampleRate),
		FadeSamples: queue.MsToSamples(5, klatt.SampleRate),
		Purge:       true,
	})
}

// Terminate stops the planner goroutine. The engine and queue remain
// usable for draining any already-queued audio.
func (p *Player) Terminate() {
	p.cancel()
	close(p.requests)
	p.wg.Wait()
}

// Pause/Resume are forwarded to the host sink in the driver this is
// modeled on; the DSP loop itself is never suspended (see
// Synthesize), so these only gate whether the host should keep pulling
// blocks.
func (p *Player) Pause() {
	p.pauseMu.Lock()
	p.paused = true
	p.pauseMu.Unlock()
}

func (p *Player) Resume() {
	p.pauseMu.Lock()
	p.paused = false
	p.pauseMu.Unlock()
}

func (p *Player) Paused() bool {
	p.pauseMu.Lock()
	defer p.pauseMu.Unlock()
	return p.paused
}

// Synthesize pulls up to n samples of PCM from the DSP engine.
func (p *Player) Synthesize(n int) []int16 {
	return p.engine.Synthesize(n)
}

// LastIndex returns the most recently reached user index, if any.
func (p *Player) LastIndex() (int, bool) {
	return p.engine.LastIndex()
}

func (p *Player) plannerLoop(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-p.requests:
			if !ok {
				return
			}
			p.planOne(req)
		}
	}
}

// planOne runs normalize -> tokenize -> plan -> durations -> pitches ->
// voice overrides, then enqueues the resulting frames. An empty or
// unrecognized result still honors a pending user index with a brief
// silent frame (see silentIndexFrame).
func (p *Player) planOne(req SpeakRequest) {
	canonical := ipa.Normalize(req.Text, req.Language, p.table)
	tokens := ipa.Tokenize(canonical, p.table)
	units := plan.Plan(tokens, p.table)

	if len(units) == 0 {
		p.queue.Push(silentIndexFrame(req))
		return
	}

	speed := req.Speed
	if speed <= 0 {
		speed = 1
	}
	duration.Assign(units, speed)

	clauses := SplitClauses(req.Text)
	clauseType := intonation.Period
	if len(clauses) > 0 {
		clauseType = clauses[0].Type
	}
	intonation.Assign(units, req.BasePitch, req.Inflection, clauseType)

	if req.Preset != nil {
		req.Preset.ApplyAll(units)
	}
	if req.Extra != nil {
		req.Extra.ApplyAll(units)
	}

	for i := range units {
		p.queue.Push(frameEntry(units[i], req, i == 0))
	}
}

func frameEntry(u plan.Phoneme, req SpeakRequest, first bool) queue.Entry {
	e := queue.Entry{
		MinSamples:  queue.MsToSamples(u.Duration, klatt.SampleRate),
		FadeSamples: queue.MsToSamples(u.FadeDuration, klatt.SampleRate),
	}
	if !u.Flags.Has(plan.Silence) {
		params := u.Params
		e.Frame = &params
	}
	if first && req.HasIndex {
		e.UserIndex = req.UserIndex
		e.HasIndex = true
	}
	return e
}

// silentIndexFrame is the FORCE INDEX FALLBACK case: a 10ms/5ms silent
// frame carrying any pending user index, emitted when the phonemizer or
// planner yields nothing for an utterance.
func silentIndexFrame(req SpeakRequest) queue.Entry {
	e := queue.Entry{
		MinSamples:  queue.MsToSamples(10, klatt.SampleRate),
		FadeSamples: queue.MsToSamples(5, klatt.SampleRate),
	}
	if req.HasIndex {
		e.UserIndex = req.UserIndex
		e.HasIndex = true
	}
	return e
}
