package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// Request перенос бронирования. Длительность сохраняется.
type Request struct {
	BookingID string
	UserID    int64
	StaffID   string // пусто - тот же мастер
	Date      time.Time
	StartTime types.TimeString
}

// Response перенесенное бронирование
type Response struct {
	ID              string
	SalonID         string
	StaffID         string
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	Status          string
}
