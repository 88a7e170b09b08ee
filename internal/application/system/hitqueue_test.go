package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kumite/internal/domain/entity"
)

func eventWithFrame(frame int) CollisionEvent {
	return CollisionEvent{Frame: frame, Attacker: entity.Player1, Defender: entity.Player2}
}

func TestHitQueue_InsertionOrder(t *testing.T) {
	q := NewHitQueue()
	for i := 0; i < 5; i++ {
		q.Push(eventWithFrame(i))
	}

	require.Equal(t, 5, q.Len())
	for i := 0; i < 5; i++ {
		ev, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, ev.Frame)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestHitQueue_OverflowDropsOldest(t *testing.T) {
	q := NewHitQueue()
	for i := 0; i < HitQueueCapacity+3; i++ {
		q.Push(eventWithFrame(i))
	}

	assert.Equal(t, HitQueueCapacity, q.Len())
	assert.Equal(t, uint64(3), q.Dropped(), "overflow is counted, not a crash")

	ev, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, ev.Frame, "oldest unprocessed events were dropped")
}

func TestHitQueue_Clear(t *testing.T) {
	q := NewHitQueue()
	q.Push(eventWithFrame(0))
	q.Push(eventWithFrame(1))

	q.Clear()

	assert.Equal(t, 0, q.Len())
	_, ok := q.Pop()
	assert.False(t, ok)
	assert.Equal(t, uint64(0), q.Dropped(), "clearing is not dropping")
}

func TestHitQueue_WrapAround(t *testing.T) {
	q := NewHitQueue()
	// Interleave pushes and pops so head walks around the ring.
	for round := 0; round < 3; round++ {
		for i := 0; i < 20; i++ {
			q.Push(eventWithFrame(round*100 + i))
		}
		for i := 0; i < 20; i++ {
			ev, ok := q.Pop()
			require.True(t, ok)
			assert.Equal(t, round*100+i, ev.Frame)
		}
	}
	assert.Equal(t, uint64(0), q.Dropped())
}
