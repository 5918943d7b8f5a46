package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// Window half-open interval [Start, End) in minutes since local midnight
type Window struct {
	Start int
	End   int
}

// Len returns the window length in minutes, zero for empty windows
func (w Window) Len() int {
	if w.End <= w.Start {
		return 0
	}
	return w.End - w.Start
}

// Contains reports whether [start, end) lies entirely inside the window
func (w Window) Contains(start, end int) bool {
	return start >= w.Start && end <= w.End
}

// Overlaps reports whether [start, end) intersects the window.
// Touching bounds do not overlap.
func (w Window) Overlaps(start, end int) bool {
	return start < w.End && w.Start < end
}

// minutesOfDay minutes since local midnight by wall clock
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// atMinutes moment on the local date of day at the given wall-clock minute.
// 1440 is normalized to midnight of the next day.
func atMinutes(day time.Time, minutes int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, day.Location())
}

// startOfDay local midnight of t
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// localSpan converts [start, end) into minutes of the local day of start.
// ok is false when the interval leaves that day; ending exactly at the next midnight is allowed.
func localSpan(start, end time.Time) (startMin, endMin int, ok bool) {
	startMin = minutesOfDay(start)
	if isSameDay(start, end) {
		return startMin, minutesOfDay(end), true
	}
	nextDay := startOfDay(start).AddDate(0, 0, 1)
	if end.Equal(nextDay) {
		return startMin, types.MinutesPerDay, true
	}
	return startMin, 0, false
}

func overlapsTime(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
