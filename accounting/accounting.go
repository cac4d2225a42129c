// Package accounting pairs clock-in and clock-out events and derives worked
// time, remaining time and the projected leave time from them.
//
// Every function is a pure computation over its arguments: nothing is cached
// between calls and callers recompute from the full event list each time.
package accounting

import (
	"fmt"
	"sort"
	"time"

	"leavetime/timelog"
)

// Stamp is an event placed on the time-of-day axis.
type Stamp struct {
	Time  string
	Kind  timelog.Kind
	Index int       // position of the event in the caller's list
	At    time.Time // instant on timelog.AnchorDate, zero when Err is set
	Err   error
}

// Valid reports whether the stamp's time was parsed.
func (s Stamp) Valid() bool {
	return s.Err == nil
}

// Segment is one in/out pairing. Out is nil while the segment is open.
type Segment struct {
	In  Stamp
	Out *Stamp
}

// Open reports whether the segment has no closing event yet.
func (s Segment) Open() bool {
	return s.Out == nil
}

// InIndex returns the list position of the opening event.
func (s Segment) InIndex() int {
	return s.In.Index
}

// OutIndex returns the list position of the closing event, or -1.
func (s Segment) OutIndex() int {
	if s.Out == nil {
		return -1
	}
	return s.Out.Index
}

// Duration returns the elapsed time of a closed segment. Open segments are
// zero. A segment with an unparsable side is a computation error and
// contributes nothing.
func (s Segment) Duration() (time.Duration, error) {
	if s.Out == nil {
		return 0, nil
	}
	if s.In.Err != nil {
		return 0, fmt.Errorf("segment %d-%d: %w", s.In.Index, s.Out.Index, s.In.Err)
	}
	if s.Out.Err != nil {
		return 0, fmt.Errorf("segment %d-%d: %w", s.In.Index, s.Out.Index, s.Out.Err)
	}
	return s.Out.At.Sub(s.In.At), nil
}

// Normalize drops incomplete events, parses the rest and sorts them by time
// of day. The sort is stable so equal times keep their input order.
// Stamps whose time cannot be parsed carry Err and sort after all others.
func Normalize(events []timelog.Event) []Stamp {
	stamps := make([]Stamp, 0, len(events))
	for i, event := range events {
		if !event.Complete() {
			continue
		}
		at, err := timelog.ParseClock(event.Time)
		stamps = append(stamps, Stamp{
			Time:  event.Time,
			Kind:  event.Kind,
			Index: i,
			At:    at,
			Err:   err,
		})
	}

	sort.SliceStable(stamps, func(i, j int) bool {
		a, b := stamps[i], stamps[j]
		if a.Valid() != b.Valid() {
			return a.Valid()
		}
		return a.At.Before(b.At)
	})

	return stamps
}

// PairSegments walks sorted stamps once and pairs each "in" with the next
// "out". A second "in" before any "out" replaces the pending one. An "out"
// with nothing pending is dropped. A trailing "in" becomes an open segment.
// An unparsable "in" is never pending; an unparsable "out" still closes the
// pending "in" and the pair's Duration reports the error.
func PairSegments(stamps []Stamp) []Segment {
	var segments []Segment
	var pending *Stamp

	for i := range stamps {
		stamp := stamps[i]
		switch stamp.Kind {
		case timelog.KindIn:
			if !stamp.Valid() {
				continue
			}
			pending = &stamp
		case timelog.KindOut:
			if pending == nil {
				continue
			}
			out := stamp
			segments = append(segments, Segment{In: *pending, Out: &out})
			pending = nil
		}
	}

	if pending != nil {
		segments = append(segments, Segment{In: *pending})
	}

	return segments
}

// TotalWorked sums the durations of the closed segments.
func TotalWorked(stamps []Stamp) time.Duration {
	return sumWorked(PairSegments(stamps))
}

func sumWorked(segments []Segment) time.Duration {
	var total time.Duration
	for _, segment := range segments {
		d, err := segment.Duration()
		if err != nil || d <= 0 {
			continue
		}
		total += d
	}
	return total
}

// RemainingToTarget returns how much of target is still to be worked.
// It never goes below zero.
func RemainingToTarget(total, target time.Duration) time.Duration {
	if remaining := target - total; remaining > 0 {
		return remaining
	}
	return 0
}

// Minutes returns d in whole minutes.
func Minutes(d time.Duration) int {
	return int(d / time.Minute)
}

// lastValid returns the chronologically last stamp with a parsed time.
func lastValid(stamps []Stamp) (Stamp, bool) {
	for i := len(stamps) - 1; i >= 0; i-- {
		if stamps[i].Valid() {
			return stamps[i], true
		}
	}
	return Stamp{}, false
}
