package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMsToSamplesRounds(t *testing.T) {
	require.Equal(t, 160, MsToSamples(10, 16000))
	require.Equal(t, 8, MsToSamples(0.5, 16000))
}

func TestPushPopFIFOOrder(t *testing.T) {
	q := New()
	q.Push(Entry{MinSamples: 1})
	q.Push(Entry{MinSamples: 2})
	q.Push(Entry{MinSamples: 3})

	for _, want := range []int{1, 2, 3} {
		e, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, want, e.MinSamples)
	}
	_, ok := q.Pop()
	require.False(t, ok)
}

func TestPushPurgeDropsPending(t *testing.T) {
	q := New()
	q.Push(Entry{MinSamples: 1})
	q.Push(Entry{MinSamples: 2})
	q.Push(Entry{MinSamples: 3, Purge: true})

	require.Equal(t, 1, q.Len())
	e, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 3, e.MinSamples)
}

func TestPeekDoesNotRemove(t *testing.T) {
	q := New()
	q.Push(Entry{MinSamples: 5})
	e, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 5, e.MinSamples)
	require.Equal(t, 1, q.Len())
}

func TestExplicitPurgeEmptiesQueue(t *testing.T) {
	q := New()
	q.Push(Entry{MinSamples: 1})
	q.Purge()
	require.Equal(t, 0, q.Len())
}
