package timelog

import (
	"fmt"
	"strings"
)

// Log is the session's event list. It is owned by a single goroutine and
// handed to the accounting functions as a snapshot on every query.
// Events are never removed; edits change the time only.
type Log struct {
	events []Event
	last   Kind
}

// NewLog returns a log holding a copy of events.
func NewLog(events ...Event) *Log {
	l := &Log{events: append([]Event(nil), events...)}
	if len(events) > 0 {
		l.last = events[len(events)-1].Kind
	}
	return l
}

// Append validates value and records a new event, returning its index.
// Invalid times are rejected and nothing is recorded.
func (l *Log) Append(value string, kind Kind) (int, error) {
	if !kind.Valid() {
		return -1, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if err := ValidateClock(value); err != nil {
		return -1, err
	}

	l.events = append(l.events, Event{Time: strings.TrimSpace(value), Kind: kind})
	l.last = kind
	return len(l.events) - 1, nil
}

// Edit replaces the time of the event at index. Its kind and position stay.
func (l *Log) Edit(index int, value string) error {
	if index < 0 || index >= len(l.events) {
		return fmt.Errorf("%w: %d", ErrNoSuchEvent, index)
	}
	if err := ValidateClock(value); err != nil {
		return err
	}

	l.events[index].Time = strings.TrimSpace(value)
	return nil
}

// At returns the event at index.
func (l *Log) At(index int) (Event, error) {
	if index < 0 || index >= len(l.events) {
		return Event{}, fmt.Errorf("%w: %d", ErrNoSuchEvent, index)
	}
	return l.events[index], nil
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	return len(l.events)
}

// Events returns a copy of the recorded events in entry order.
func (l *Log) Events() []Event {
	return append([]Event(nil), l.events...)
}

// NextKind is the kind an entry form should offer next: the opposite of
// the last recorded kind, or KindIn for an empty log.
func (l *Log) NextKind() Kind {
	if l.last == "" {
		return KindIn
	}
	return l.last.Opposite()
}
