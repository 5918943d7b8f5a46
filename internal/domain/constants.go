package domain

// Default configuration values
const (
	DefaultSlotStepMinutes = 30
	DefaultBookingMode     = ModeChooseEmployee
	DefaultTimezone        = "UTC"

	// MinLeadTimeMinutes минимальный запас до начала слота, если дата - сегодня
	MinLeadTimeMinutes = 30
)

// Business validation constants
const (
	MinSlotStepMinutes          = 5
	MaxSlotStepMinutes          = 240
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 720 // 12 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы, которые учитываются при проверке пересечений
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
