package timelog

import "errors"

// Clock string errors
var (
	ErrInvalidClock    = errors.New("please enter time in format: h:mm:ss AM/PM (e.g., 9:30:00 AM) or HH:mm:ss (e.g., 09:30:00)")
	ErrUnparsableClock = errors.New("unparsable clock time")
	ErrInvalidDuration = errors.New("duration must be in H:MM format")
)

// Event and log errors
var (
	ErrInvalidKind    = errors.New("event kind must be \"in\" or \"out\"")
	ErrMalformedEvent = errors.New("event line must be \"<time> <in|out>\"")
	ErrNoSuchEvent    = errors.New("no event at that position")
)
