package availability

import (
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// DayContext snapshot loaded by the data-access layer for one local day.
// The core never mutates it.
type DayContext struct {
	SalonHours []domain.OperatingHoursRule // по одной строке на день недели, может быть неполным
	StaffHours []domain.StaffHoursRule     // разреженно, ключ (staffID, dayOfWeek)
	Bookings   []domain.Booking            // бронирования, пересекающие день
	TimeOff    []domain.TimeOffRecord      // отсутствия, пересекающие день
}

// SalonRule returns the operating-hours rule for the weekday or nil
func (c DayContext) SalonRule(dayOfWeek int) *domain.OperatingHoursRule {
	for i := range c.SalonHours {
		if c.SalonHours[i].DayOfWeek == dayOfWeek {
			return &c.SalonHours[i]
		}
	}
	return nil
}

// StaffRule returns the staff rule for the weekday or nil
func (c DayContext) StaffRule(staffID string, dayOfWeek int) *domain.StaffHoursRule {
	for i := range c.StaffHours {
		if c.StaffHours[i].StaffID == staffID && c.StaffHours[i].DayOfWeek == dayOfWeek {
			return &c.StaffHours[i]
		}
	}
	return nil
}

// Schedule resolves the effective schedule of the staff member for the weekday
func (c DayContext) Schedule(staffID string, dayOfWeek int) DaySchedule {
	return ResolveDay(c.SalonRule(dayOfWeek), c.StaffRule(staffID, dayOfWeek))
}
