package accounting

import (
	"time"

	"leavetime/timelog"
)

// Options carries the day's target and the break allowance.
type Options struct {
	Target         time.Duration
	BreakAllowance time.Duration
}

// ParseOptions parses target and break allowance given as H:MM strings.
// An empty break string means no allowance.
func ParseOptions(target, breakAllowance string) (Options, error) {
	t, err := timelog.ParseHM(target)
	if err != nil {
		return Options{}, err
	}
	var b time.Duration
	if breakAllowance != "" {
		b, err = timelog.ParseHM(breakAllowance)
		if err != nil {
			return Options{}, err
		}
	}
	return Options{Target: t, BreakAllowance: b}, nil
}

// Summary is everything the views show, computed from one snapshot.
type Summary struct {
	Stamps    []Stamp
	Segments  []Segment
	Worked    time.Duration
	Remaining time.Duration
	Leave     Leave

	// BreakTaken is the time between consecutive segments, plus the
	// current absence since the last segment's "out" when it is closed.
	BreakTaken   time.Duration
	UntakenBreak time.Duration
	// LeaveWithBreak is Leave pushed back by UntakenBreak.
	LeaveWithBreak Leave
}

// Summarize computes a Summary for events at wall-clock time now.
func Summarize(events []timelog.Event, opts Options, now time.Time) Summary {
	stamps := Normalize(events)
	segments := PairSegments(stamps)
	worked := sumWorked(segments)

	s := Summary{
		Stamps:    stamps,
		Segments:  segments,
		Worked:    worked,
		Remaining: RemainingToTarget(worked, opts.Target),
		Leave:     ProjectedLeaveTime(stamps, opts.Target, now),
	}
	if len(events) > 0 && len(stamps) == 0 {
		s.Leave = Leave{Status: LeaveNoValidLogs}
	}

	s.BreakTaken = breakTaken(segments, now)
	s.UntakenBreak = RemainingToTarget(s.BreakTaken, opts.BreakAllowance)

	s.LeaveWithBreak = s.Leave
	if s.Leave.HasTime() {
		s.LeaveWithBreak.At = s.Leave.At.Add(s.UntakenBreak)
	}

	return s
}

func breakTaken(segments []Segment, now time.Time) time.Duration {
	var taken time.Duration
	for i := 0; i+1 < len(segments); i++ {
		prev, next := segments[i], segments[i+1]
		if prev.Out == nil || !prev.Out.Valid() || !next.In.Valid() {
			continue
		}
		if gap := next.In.At.Sub(prev.Out.At); gap > 0 {
			taken += gap
		}
	}

	// A closed final segment means nothing has been clocked in since its
	// "out", so the current absence runs from there. Later dangling outs
	// do not move it.
	if n := len(segments); n > 0 {
		last := segments[n-1]
		if last.Out != nil && last.Out.Valid() {
			if gap := clockOf(now).Sub(last.Out.At); gap > 0 {
				taken += gap
			}
		}
	}
	return taken
}
