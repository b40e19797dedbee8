package components

import "github.com/yohamta/donburi"

// ScrollEvent is one mouse wheel notch; positive Y scrolls up.
type ScrollEvent struct {
	Y float64
}

// ScrollQueueData buffers the frame's scroll events in arrival order.
type ScrollQueueData struct {
	Events []ScrollEvent
}

// Push appends an event to the back of the queue.
func (q *ScrollQueueData) Push(e ScrollEvent) {
	q.Events = append(q.Events, e)
}

// Drain calls fn for every queued event in order and empties the queue.
func (q *ScrollQueueData) Drain(fn func(ScrollEvent)) {
	for _, e := range q.Events {
		fn(e)
	}
	q.Events = q.Events[:0]
}

var ScrollQueue = donburi.NewComponentType[ScrollQueueData]()
