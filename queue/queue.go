// Package queue implements the frame queue: an ordered, mutex-guarded
// FIFO of pending DSP entries, with purge semantics for cancellation.
package queue

import (
	"sync"

	"github.com/gophone/speechplayer/phoneme"
)

// Entry is one frame-queue entry: an optional frame (nil means
// silence), its duration and fade window in samples, an optional user
// index, and whether enqueuing it should purge everything queued
// before it.
type Entry struct {
	Frame      *phoneme.Params
	MinSamples int
	FadeSamples int
	UserIndex  int
	HasIndex   bool
	Purge      bool
}

// MsToSamples converts a millisecond duration to a sample count at the
// given sample rate, matching the driver's queueFrame conversion.
func MsToSamples(ms float64, sampleRate int) int {
	return int(ms*(float64(sampleRate)/1000.0) + 0.5)
}

// Queue is a thread-safe FIFO of pending Entry values.
type Queue struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Push appends e to the queue. If e.Purge is set, every entry queued
// before it is dropped first.
func (q *Queue) Push(e Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if e.Purge {
		q.entries = q.entries[:0]
	}
	q.entries = append(q.entries, e)
}

// Pop removes and returns the head entry, or ok=false if empty.
func (q *Queue) Pop() (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	e := q.entries[0]
	q.entries = q.entries[1:]
	return e, true
}

// Peek returns the head entry without removing it, or ok=false if
// empty.
func (q *Queue) Peek() (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	return q.entries[0], true
}

// Purge drops every pending entry.
func (q *Queue) Purge() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = q.entries[:0]
}

// Len reports the number of pending entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
