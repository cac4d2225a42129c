package timelog

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Kind marks an event as a clock-in or a clock-out boundary.
type Kind string

const (
	KindIn  Kind = "in"
	KindOut Kind = "out"
)

// ParseKind accepts "in" or "out" in any case.
func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindIn:
		return KindIn, nil
	case KindOut:
		return KindOut, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, value)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindIn || k == KindOut
}

// Opposite returns the other kind. Unknown kinds map to KindIn.
func (k Kind) Opposite() Kind {
	if k == KindIn {
		return KindOut
	}
	return KindIn
}

// Label is the past-tense phrase used in confirmations.
func (k Kind) Label() string {
	if k == KindOut {
		return "clocked out"
	}
	return "clocked in"
}

// Event is a single typed clock time as the user entered it.
type Event struct {
	Time string
	Kind Kind
}

// Complete reports whether the event carries both a time and a known kind.
func (e Event) Complete() bool {
	return strings.TrimSpace(e.Time) != "" && e.Kind.Valid()
}

// FormatEvent formats an event as a line: "<time> <kind>".
func FormatEvent(e Event) string {
	return fmt.Sprintf("%s %s", strings.TrimSpace(e.Time), e.Kind)
}

// ParseEvent parses a single "<time> <kind>" line. The last field is the
// kind, everything before it is the time. The time is not validated here.
func ParseEvent(raw string) (Event, error) {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return Event{}, fmt.Errorf("%w: %q", ErrMalformedEvent, raw)
	}

	kind, err := ParseKind(fields[len(fields)-1])
	if err != nil {
		return Event{}, err
	}

	return Event{
		Time: strings.Join(fields[:len(fields)-1], " "),
		Kind: kind,
	}, nil
}

// ReadEvents reads events line by line.
// Skips empty lines and lines starting with #.
func ReadEvents(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		stripped := strings.TrimSpace(scanner.Text())
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		event, err := ParseEvent(stripped)
		if err != nil {
			// Skip malformed lines but continue reading
			slog.Debug("skipping event line", "line", lineNo, "error", err)
			continue
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}

	return events, nil
}
