package availability

import (
	"time"
)

// candidate interval under check, already mapped onto the salon's local day
type candidate struct {
	staffID          string
	start, end       time.Time
	startMin, endMin int
	sameDay          bool
	schedule         DaySchedule
	excludeBookingID string
}

// rule one blocking condition of the precedence chain
type rule struct {
	reason  ReasonCode
	blocked func(c *candidate, dc DayContext) bool
}

// precedence порядок проверок. Первая сработавшая определяет код причины,
// поэтому порядок виден пользователю и не должен меняться при рефакторинге.
var precedence = []rule{
	{
		reason: ReasonClosedDay,
		blocked: func(c *candidate, _ DayContext) bool {
			return c.schedule.Closed
		},
	},
	{
		reason: ReasonOutsideWorkingHours,
		blocked: func(c *candidate, _ DayContext) bool {
			return !c.sameDay || c.schedule.Off || !c.schedule.Working.Contains(c.startMin, c.endMin)
		},
	},
	{
		reason: ReasonInsideBreak,
		blocked: func(c *candidate, _ DayContext) bool {
			return c.schedule.Break != nil && c.schedule.Break.Overlaps(c.startMin, c.endMin)
		},
	},
	{
		reason: ReasonTimeOff,
		blocked: func(c *candidate, dc DayContext) bool {
			for _, off := range dc.TimeOff {
				if off.StaffID == c.staffID && overlapsTime(off.StartAt, off.EndAt, c.start, c.end) {
					return true
				}
			}
			return false
		},
	},
	{
		reason: ReasonOverlap,
		blocked: func(c *candidate, dc DayContext) bool {
			for i := range dc.Bookings {
				b := &dc.Bookings[i]
				if b.StaffID != c.staffID || !b.IsOccupying() {
					continue
				}
				if c.excludeBookingID != "" && b.ID == c.excludeBookingID {
					continue
				}
				if overlapsTime(b.StartAt, b.EndAt, c.start, c.end) {
					return true
				}
			}
			return false
		},
	},
}

// Precedence returns the reason codes in the order they are evaluated
func Precedence() []ReasonCode {
	codes := make([]ReasonCode, len(precedence))
	for i, r := range precedence {
		codes[i] = r.reason
	}
	return codes
}

// CheckConflict decides whether [start, end) can be booked for the staff member.
// start and end must be in the salon's time zone: the weekday and the
// minute offsets are taken from the wall clock of start.
func CheckConflict(dc DayContext, staffID string, start, end time.Time, excludeBookingID string) Decision {
	if staffID == "" || !end.After(start) {
		return Reject(ReasonSlotUnavailable)
	}
	return evaluate(dc, dc.Schedule(staffID, int(start.Weekday())), staffID, start, end, excludeBookingID)
}

// evaluate runs the precedence chain against a resolved schedule
func evaluate(dc DayContext, schedule DaySchedule, staffID string, start, end time.Time, excludeBookingID string) Decision {
	startMin, endMin, sameDay := localSpan(start, end)
	c := &candidate{
		staffID:          staffID,
		start:            start,
		end:              end,
		startMin:         startMin,
		endMin:           endMin,
		sameDay:          sameDay,
		schedule:         schedule,
		excludeBookingID: excludeBookingID,
	}

	for _, r := range precedence {
		if r.blocked(c, dc) {
			return Reject(r.reason)
		}
	}
	return Allow()
}
