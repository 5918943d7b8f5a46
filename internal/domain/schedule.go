package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// OperatingHoursRule salon opening hours for one weekday (0 = Sunday)
type OperatingHoursRule struct {
	SalonID   string
	DayOfWeek int
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsClosed  bool // если true, OpenTime/CloseTime игнорируются
}

// StaffHoursRule personal weekly rule of a staff member.
// Narrows the salon window; absence means the salon window applies as is.
type StaffHoursRule struct {
	StaffID    string
	DayOfWeek  int
	StartTime  types.TimeString
	EndTime    types.TimeString
	IsOff      bool
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
}

// HasBreak returns true if both break bounds are set
func (r *StaffHoursRule) HasBreak() bool {
	return r.BreakStart != nil && r.BreakEnd != nil && !r.BreakStart.IsZero() && !r.BreakEnd.IsZero()
}

// TimeOffRecord exclusion interval of a staff member, always blocking
type TimeOffRecord struct {
	ID        string
	StaffID   string
	StartAt   time.Time
	EndAt     time.Time
	Reason    *string
	CreatedAt time.Time
}

// StaffServiceAssignment staff member is allowed to perform the service
type StaffServiceAssignment struct {
	SalonID   string
	StaffID   string
	ServiceID string
}

// Staff member of a salon
type Staff struct {
	ID       string
	SalonID  string
	Name     string
	Position int // порядок в списке, используется при автоназначении
	IsActive bool
}

// Service offered by a salon
type Service struct {
	ID              string
	SalonID         string
	Name            string
	DurationMinutes int
}

// BookingMode how a staff member is selected for a new booking
type BookingMode string

const (
	ModeChooseEmployee BookingMode = "choose_employee"
	ModeAutoAssign     BookingMode = "auto_assign"
)

// IsValid returns true for known modes
func (m BookingMode) IsValid() bool {
	return m == ModeChooseEmployee || m == ModeAutoAssign
}

// SalonSettings booking configuration of a salon
type SalonSettings struct {
	SalonID         string
	BookingMode     BookingMode
	Timezone        string // IANA, например "Europe/Moscow"
	SlotStepMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Location returns the salon time zone, UTC when it cannot be loaded
func (s *SalonSettings) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LocalDate returns midnight of the calendar day of d in the salon time zone.
// Год, месяц и день берутся из d как есть, без перевода времени.
func (s *SalonSettings) LocalDate(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, s.Location())
}
