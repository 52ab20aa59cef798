package ecs

// EventKind identifies a gameplay event.
type EventKind uint8

const (
	EventPlayerDied EventKind = iota + 1
	EventEnemyKilled
)

func (k EventKind) String() string {
	switch k {
	case EventPlayerDied:
		return "player_died"
	case EventEnemyKilled:
		return "enemy_killed"
	}
	return "unknown"
}

// Event is a gameplay notification raised by a system for the game loop.
type Event struct {
	Kind   EventKind
	Entity Entity
}

// EventQueue is a FIFO of events. Events stay queued until drained.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
