package timelog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	twelveHourRe     = regexp.MustCompile(`(?i)^(0?[1-9]|1[0-2]):[0-5][0-9]:[0-5][0-9] (AM|PM)$`)
	twentyFourHourRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)
	hourMinuteRe     = regexp.MustCompile(`^(?P<hour>\d{1,3}):(?P<minute>[0-5]\d)$`)
)

// AnchorDate is the day every parsed clock time is placed on, so that only
// the time of day takes part in comparisons and arithmetic.
var AnchorDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// LocalNow returns current local time with seconds precision (no microseconds).
func LocalNow() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), 0, now.Location())
}

// ValidateClock reports whether value is a clock time the entry form accepts:
// h:mm:ss AM/PM (meridiem in any case) or HH:mm with optional :ss.
func ValidateClock(value string) error {
	v := strings.TrimSpace(value)
	if twelveHourRe.MatchString(v) || twentyFourHourRe.MatchString(v) {
		return nil
	}
	return ErrInvalidClock
}

// ParseClock converts a 12-hour or 24-hour clock string into an instant on
// AnchorDate. It is more lenient than ValidateClock about spacing and leading
// zeros but still rejects anything that does not name a real time of day.
func ParseClock(value string) (time.Time, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 2 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableClock, value)
	}

	parts := strings.Split(fields[0], ":")
	if len(parts) < 2 || len(parts) > 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableClock, value)
	}

	var hms [3]int
	for i, part := range parts {
		n, ok := atoiDigits(part)
		if !ok {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableClock, value)
		}
		hms[i] = n
	}
	hour, minute, second := hms[0], hms[1], hms[2]

	if len(fields) == 2 {
		switch strings.ToUpper(fields[1]) {
		case "PM":
			if hour != 12 {
				hour += 12
			}
		case "AM":
			if hour == 12 {
				hour = 0
			}
		default:
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableClock, value)
		}
	}

	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableClock, value)
	}

	return time.Date(AnchorDate.Year(), AnchorDate.Month(), AnchorDate.Day(), hour, minute, second, 0, time.UTC), nil
}

func atoiDigits(s string) (int, bool) {
	if s == "" || len(s) > 2 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// ParseHM parses a duration written as H:MM (e.g. "08:00" or "7:30").
func ParseHM(value string) (time.Duration, error) {
	matches := hourMinuteRe.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}

	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

// FormatHM formats a duration as "HH:MM", truncated to whole minutes.
func FormatHM(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatSpan formats a duration as "Xh Ym Zs", leaving out zero parts.
func FormatSpan(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSeconds := int(d / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}

// FormatClock formats the time of day of t as "hh:mm:ss AM/PM".
func FormatClock(t time.Time) string {
	hour := t.Hour()
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d:%02d %s", hour, t.Minute(), t.Second(), suffix)
}

// DisplayClock renders a raw clock string as "h:mm AM" for timelines.
// Unparsable input is returned unchanged.
func DisplayClock(raw string) string {
	t, err := ParseClock(raw)
	if err != nil {
		return raw
	}
	return t.Format("3:04 PM")
}
