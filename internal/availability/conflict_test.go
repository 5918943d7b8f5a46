package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

func TestPrecedenceOrder(t *testing.T) {
	assert.Equal(t, []ReasonCode{
		ReasonClosedDay,
		ReasonOutsideWorkingHours,
		ReasonInsideBreak,
		ReasonTimeOff,
		ReasonOverlap,
	}, Precedence())
}

func TestCheckConflict(t *testing.T) {
	dc := DayContext{
		SalonHours: []domain.OperatingHoursRule{salonOpen(1, "08:00", "20:00")},
		StaffHours: []domain.StaffHoursRule{
			withBreak(staffHours(staffAnna, 1, "10:00", "18:00"), "13:00", "14:00"),
		},
		TimeOff: []domain.TimeOffRecord{
			{ID: "off-1", StaffID: staffAnna, StartAt: at(16, 0), EndAt: at(17, 0)},
			{ID: "off-2", StaffID: staffBob, StartAt: at(11, 0), EndAt: at(12, 0)},
		},
		Bookings: []domain.Booking{
			booking("b-1", staffAnna, at(15, 0), at(16, 0), domain.StatusConfirmed),
			booking("b-2", staffAnna, at(11, 0), at(12, 0), domain.StatusCancelled),
			booking("b-3", staffAnna, at(12, 0), at(12, 30), domain.StatusNoShow),
			booking("b-4", staffAnna, at(10, 0), at(10, 30), domain.StatusPending),
		},
	}

	tests := []struct {
		name    string
		staffID string
		start   time.Time
		end     time.Time
		exclude string
		want    Decision
	}{
		{name: "free interval", staffID: staffAnna, start: at(11, 0), end: at(12, 0), want: Allow()},
		{name: "before staff hours", staffID: staffAnna, start: at(9, 30), end: at(10, 30), want: Reject(ReasonOutsideWorkingHours)},
		{name: "ends after staff hours", staffID: staffAnna, start: at(17, 30), end: at(18, 30), want: Reject(ReasonOutsideWorkingHours)},
		{name: "inside break", staffID: staffAnna, start: at(13, 0), end: at(13, 30), want: Reject(ReasonInsideBreak)},
		{name: "straddles break", staffID: staffAnna, start: at(12, 30), end: at(14, 30), want: Reject(ReasonInsideBreak)},
		{name: "ends when break starts", staffID: staffAnna, start: at(12, 30), end: at(13, 0), want: Allow()},
		{name: "time off", staffID: staffAnna, start: at(16, 30), end: at(17, 0), want: Reject(ReasonTimeOff)},
		{name: "time off wins over overlap", staffID: staffAnna, start: at(15, 30), end: at(16, 30), want: Reject(ReasonTimeOff)},
		{name: "overlap with confirmed", staffID: staffAnna, start: at(15, 30), end: at(16, 0), want: Reject(ReasonOverlap)},
		{name: "overlap with pending", staffID: staffAnna, start: at(10, 0), end: at(10, 30), want: Reject(ReasonOverlap)},
		{name: "adjacent after booking", staffID: staffAnna, start: at(10, 30), end: at(11, 0), want: Allow()},
		{name: "adjacent before booking", staffID: staffAnna, start: at(14, 30), end: at(15, 0), want: Allow()},
		{name: "excluded own booking", staffID: staffAnna, start: at(15, 0), end: at(16, 0), exclude: "b-1", want: Allow()},
		{name: "time off is per staff", staffID: staffBob, start: at(11, 0), end: at(12, 0), want: Reject(ReasonTimeOff)},
		{name: "other staff bookings do not block", staffID: staffBob, start: at(15, 0), end: at(16, 0), want: Allow()},
		{name: "empty staff id", staffID: "", start: at(11, 0), end: at(12, 0), want: Reject(ReasonSlotUnavailable)},
		{name: "end before start", staffID: staffAnna, start: at(12, 0), end: at(11, 0), want: Reject(ReasonSlotUnavailable)},
		{name: "zero length", staffID: staffAnna, start: at(12, 0), end: at(12, 0), want: Reject(ReasonSlotUnavailable)},
		{name: "crosses midnight", staffID: staffAnna, start: at(17, 0), end: at(17, 0).Add(8 * time.Hour), want: Reject(ReasonOutsideWorkingHours)},
		{name: "closed weekday", staffID: staffAnna, start: at(11, 0).AddDate(0, 0, 1), end: at(12, 0).AddDate(0, 0, 1), want: Reject(ReasonClosedDay)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckConflict(dc, tt.staffID, tt.start, tt.end, tt.exclude)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckConflict_ClosedDayRegardlessOfStaffRules(t *testing.T) {
	closed := salonOpen(1, "08:00", "20:00")
	closed.IsClosed = true

	off := staffHours(staffAnna, 1, "10:00", "18:00")
	off.IsOff = true

	for _, staffRules := range [][]domain.StaffHoursRule{
		nil,
		{staffHours(staffAnna, 1, "10:00", "18:00")},
		{off},
		{withBreak(staffHours(staffAnna, 1, "10:00", "18:00"), "11:00", "12:00")},
	} {
		dc := DayContext{
			SalonHours: []domain.OperatingHoursRule{closed},
			StaffHours: staffRules,
			Bookings:   []domain.Booking{booking("b-1", staffAnna, at(11, 0), at(12, 0), domain.StatusConfirmed)},
			TimeOff:    []domain.TimeOffRecord{{StaffID: staffAnna, StartAt: at(11, 0), EndAt: at(12, 0)}},
		}
		assert.Equal(t, Reject(ReasonClosedDay), CheckConflict(dc, staffAnna, at(11, 0), at(12, 0), ""))
	}
}

func TestCheckConflict_StaffOffIsOutsideWorkingHours(t *testing.T) {
	off := staffHours(staffAnna, 1, "10:00", "18:00")
	off.IsOff = true

	dc := DayContext{
		SalonHours: []domain.OperatingHoursRule{salonOpen(1, "08:00", "20:00")},
		StaffHours: []domain.StaffHoursRule{off},
	}
	assert.Equal(t, Reject(ReasonOutsideWorkingHours), CheckConflict(dc, staffAnna, at(11, 0), at(12, 0), ""))
}

func TestCheckConflict_EndsAtMidnight(t *testing.T) {
	dc := DayContext{
		SalonHours: []domain.OperatingHoursRule{salonOpen(1, "20:00", "24:00")},
	}
	assert.Equal(t, Allow(), CheckConflict(dc, staffAnna, at(23, 0), monday.AddDate(0, 0, 1), ""))
}
