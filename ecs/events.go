package ecs

// Event is a transient world event, delivered within the same step.
type Event struct {
	Type string
	Data any
}

const (
	EventHit         = "hit"
	EventKill        = "kill"
	EventPlayerDeath = "player_death"
)

// EventQueue is a simple FIFO queue flushed at the end of every step.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
