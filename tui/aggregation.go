package tui

import (
	"time"

	"leavetime/accounting"
	"leavetime/timelog"
	"leavetime/tui/components"
)

// TimelineRows lists events newest first. An "out" row carries the
// duration of the segment it closes.
func TimelineRows(events []timelog.Event, summary accounting.Summary) []components.TimelineRow {
	durations := make(map[int]string, len(summary.Segments))
	for _, seg := range summary.Segments {
		if seg.Open() {
			durations[seg.InIndex()] = "running"
			continue
		}
		d, err := seg.Duration()
		if err != nil {
			durations[seg.OutIndex()] = "error"
			continue
		}
		durations[seg.OutIndex()] = timelog.FormatSpan(d)
	}

	rows := make([]components.TimelineRow, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		rows = append(rows, components.TimelineRow{
			Index:    i,
			Kind:     string(e.Kind),
			Clock:    timelog.DisplayClock(e.Time),
			Duration: durations[i],
		})
	}
	return rows
}

// HourlyWorked spreads every closed segment over the hours of the day it
// covers. Errored and open segments are left out.
func HourlyWorked(segments []accounting.Segment) [24]time.Duration {
	var hourly [24]time.Duration
	for _, seg := range segments {
		if seg.Open() || !seg.In.Valid() || !seg.Out.Valid() {
			continue
		}
		start, end := seg.In.At, seg.Out.At
		for start.Before(end) {
			next := start.Truncate(time.Hour).Add(time.Hour)
			if next.After(end) {
				next = end
			}
			hourly[start.Hour()] += next.Sub(start)
			start = next
		}
	}
	return hourly
}

// SegmentBars returns one bar per closed, valid segment in time order.
func SegmentBars(segments []accounting.Segment) []components.SegmentBar {
	var bars []components.SegmentBar
	for _, seg := range segments {
		if seg.Open() {
			continue
		}
		d, err := seg.Duration()
		if err != nil {
			continue
		}
		bars = append(bars, components.SegmentBar{
			Label:    seg.In.At.Format("3:04 PM") + " - " + seg.Out.At.Format("3:04 PM"),
			Duration: d,
		})
	}
	return bars
}

// clockedIn reports whether the latest valid stamp is an "in".
func clockedIn(stamps []accounting.Stamp) bool {
	for i := len(stamps) - 1; i >= 0; i-- {
		if stamps[i].Valid() {
			return stamps[i].Kind == timelog.KindIn
		}
	}
	return false
}
