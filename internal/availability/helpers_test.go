package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/ptr"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

const (
	staffAnna = "staff-anna"
	staffBob  = "staff-bob"
)

// monday 2024-01-01 is a Monday
var monday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func salonOpen(dayOfWeek int, open, closeAt string) domain.OperatingHoursRule {
	return domain.OperatingHoursRule{
		SalonID:   "salon-1",
		DayOfWeek: dayOfWeek,
		OpenTime:  types.TimeString(open),
		CloseTime: types.TimeString(closeAt),
	}
}

func staffHours(staffID string, dayOfWeek int, start, end string) domain.StaffHoursRule {
	return domain.StaffHoursRule{
		StaffID:   staffID,
		DayOfWeek: dayOfWeek,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func withBreak(r domain.StaffHoursRule, start, end string) domain.StaffHoursRule {
	r.BreakStart = ptr.Ptr(types.TimeString(start))
	r.BreakEnd = ptr.Ptr(types.TimeString(end))
	return r
}

func booking(id, staffID string, start, end time.Time, status domain.BookingStatus) domain.Booking {
	return domain.Booking{
		ID:      id,
		SalonID: "salon-1",
		StaffID: staffID,
		StartAt: start,
		EndAt:   end,
		Status:  status,
	}
}

func startTimes(slots []SlotCandidate) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.Start.Format(domain.TimeFormat)
	}
	return result
}
