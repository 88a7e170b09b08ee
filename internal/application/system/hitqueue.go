package system

// HitQueueCapacity is the fixed ring size. Overflow drops the oldest
// unprocessed event: a defined backpressure policy, not a crash.
const HitQueueCapacity = 32

// HitQueue serializes the frame's collision events for ordered
// processing. Events are resolved exactly once, in insertion order,
// then the queue is cleared.
type HitQueue struct {
	events  [HitQueueCapacity]CollisionEvent
	head    int
	count   int
	dropped uint64
}

// NewHitQueue creates an empty hit queue
func NewHitQueue() *HitQueue {
	return &HitQueue{}
}

// Push appends an event. When full, the oldest unprocessed event is
// dropped and counted for diagnostics.
func (q *HitQueue) Push(ev CollisionEvent) {
	if q.count == HitQueueCapacity {
		q.head = (q.head + 1) % HitQueueCapacity
		q.count--
		q.dropped++
	}
	q.events[(q.head+q.count)%HitQueueCapacity] = ev
	q.count++
}

// Pop removes and returns the oldest pending event
func (q *HitQueue) Pop() (CollisionEvent, bool) {
	if q.count == 0 {
		return CollisionEvent{}, false
	}
	ev := q.events[q.head]
	q.head = (q.head + 1) % HitQueueCapacity
	q.count--
	return ev, true
}

// Len returns the number of pending events
func (q *HitQueue) Len() int {
	return q.count
}

// Dropped returns the cumulative count of events lost to overflow
func (q *HitQueue) Dropped() uint64 {
	return q.dropped
}

// Clear discards any pending events at the end of a frame
func (q *HitQueue) Clear() {
	q.head = 0
	q.count = 0
}
