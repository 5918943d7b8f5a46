package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

func TestValidateBooking_OutsideWorkingHours(t *testing.T) {
	dc := DayContext{
		SalonHours: []domain.OperatingHoursRule{salonOpen(1, "08:00", "20:00")},
		StaffHours: []domain.StaffHoursRule{staffHours(staffAnna, 1, "10:00", "18:00")},
	}

	got := ValidateBooking(Proposal{StaffID: staffAnna, Start: at(9, 0), End: at(10, 0)}, dc)

	assert.False(t, got.OK)
	assert.Equal(t, ReasonOutsideWorkingHours, got.Reason)
}

func TestValidateBooking_TimeOffWithoutBookings(t *testing.T) {
	dc := DayContext{
		SalonHours: []domain.OperatingHoursRule{salonOpen(1, "08:00", "20:00")},
		StaffHours: []domain.StaffHoursRule{staffHours(staffAnna, 1, "10:00", "18:00")},
		TimeOff:    []domain.TimeOffRecord{{ID: "off-1", StaffID: staffAnna, StartAt: at(12, 0), EndAt: at(13, 0)}},
	}

	got := ValidateBooking(Proposal{StaffID: staffAnna, Start: at(12, 30), End: at(13, 0)}, dc)

	assert.Equal(t, Reject(ReasonTimeOff), got)
}

func TestValidateBooking_RescheduleOntoItself(t *testing.T) {
	dc := scenarioBContext()

	p := Proposal{StaffID: staffAnna, Start: at(15, 30), End: at(16, 30)}
	assert.Equal(t, Reject(ReasonOverlap), ValidateBooking(p, dc))

	p.ExcludeBookingID = "b-1"
	assert.Equal(t, Allow(), ValidateBooking(p, dc))
}

func TestValidateBooking_Idempotent(t *testing.T) {
	dc := scenarioBContext()
	p := Proposal{StaffID: staffAnna, Start: at(15, 0), End: at(15, 30)}

	first := ValidateBooking(p, dc)
	for range 5 {
		assert.Equal(t, first, ValidateBooking(p, dc))
	}
}

func TestAssignFirstAvailable(t *testing.T) {
	dc := DayContext{
		SalonHours: []domain.OperatingHoursRule{salonOpen(1, "08:00", "20:00")},
		StaffHours: []domain.StaffHoursRule{
			withBreak(staffHours(staffAnna, 1, "10:00", "18:00"), "13:00", "14:00"),
			staffHours(staffBob, 1, "12:00", "20:00"),
		},
		Bookings: []domain.Booking{
			booking("b-1", staffBob, at(15, 0), at(16, 0), domain.StatusPending),
		},
	}

	tests := []struct {
		name      string
		staff     []string
		start     int
		wantStaff string
		want      Decision
	}{
		{name: "first eligible wins", staff: []string{staffAnna, staffBob}, start: 16, wantStaff: staffAnna, want: Allow()},
		{name: "falls through to second", staff: []string{staffAnna, staffBob}, start: 13, wantStaff: staffBob, want: Allow()},
		{name: "order matters", staff: []string{staffBob, staffAnna}, start: 16, wantStaff: staffBob, want: Allow()},
		{name: "nobody free returns first reason", staff: []string{staffAnna, staffBob}, start: 20, wantStaff: "", want: Reject(ReasonOutsideWorkingHours)},
		{name: "empty pool", staff: nil, start: 11, wantStaff: "", want: Reject(ReasonSlotUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			staffID, decision := AssignFirstAvailable(
				Proposal{Start: at(tt.start, 0), End: at(tt.start+1, 0)},
				tt.staff,
				dc,
			)
			assert.Equal(t, tt.wantStaff, staffID)
			assert.Equal(t, tt.want, decision)
		})
	}
}
