package accounting

import (
	"time"

	"leavetime/timelog"
)

// LeaveStatus tells how a Leave estimate should be read.
type LeaveStatus int

const (
	// LeaveNoLogs means there were no events at all.
	LeaveNoLogs LeaveStatus = iota
	// LeaveNoValidLogs means events exist but none could be used.
	LeaveNoValidLogs
	// LeaveAt means the user is clocked in and At is when the target is met.
	LeaveAt
	// LeaveCanLeaveAt means the user is clocked out; At is now plus what remains.
	LeaveCanLeaveAt
	// LeaveDone means the target has been met and the user is clocked out.
	LeaveDone
)

// Leave is a projected leave time or a status explaining why there is none.
type Leave struct {
	Status LeaveStatus
	At     time.Time
}

// HasTime reports whether At carries a projected clock time.
func (l Leave) HasTime() bool {
	return l.Status == LeaveAt || l.Status == LeaveCanLeaveAt
}

func (l Leave) String() string {
	switch l.Status {
	case LeaveNoLogs:
		return "No Logs Available"
	case LeaveNoValidLogs:
		return "No valid logs"
	case LeaveAt:
		return timelog.FormatClock(l.At)
	case LeaveCanLeaveAt:
		return "You can leave at " + timelog.FormatClock(l.At)
	case LeaveDone:
		return "Target reached"
	}
	return "Unknown"
}

// ProjectedLeaveTime estimates when target will be met.
//
// When the last event is an "in", the estimate is that event's time plus
// whatever is left of target. When it is an "out", the estimate is anchored
// on now instead, so it moves with the wall clock even for a finished log.
func ProjectedLeaveTime(stamps []Stamp, target time.Duration, now time.Time) Leave {
	if len(stamps) == 0 {
		return Leave{Status: LeaveNoLogs}
	}
	last, ok := lastValid(stamps)
	if !ok {
		return Leave{Status: LeaveNoValidLogs}
	}

	remaining := RemainingToTarget(TotalWorked(stamps), target)

	if last.Kind == timelog.KindIn {
		return Leave{Status: LeaveAt, At: last.At.Add(remaining)}
	}
	if remaining == 0 {
		return Leave{Status: LeaveDone}
	}
	return Leave{Status: LeaveCanLeaveAt, At: now.Add(remaining)}
}

// clockOf places the time of day of t on timelog.AnchorDate.
func clockOf(t time.Time) time.Time {
	a := timelog.AnchorDate
	return time.Date(a.Year(), a.Month(), a.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
