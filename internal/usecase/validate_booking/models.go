package validate_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// Request предполагаемый интервал записи.
// Конец берется из EndTime, иначе из длительности услуги.
type Request struct {
	SalonID          string
	StaffID          string // пусто - первый подходящий мастер в режиме auto_assign
	ServiceID        string
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	ExcludeBookingID string // переносимое бронирование
}

// Response решение валидатора и мастер, для которого оно принято
type Response struct {
	Decision availability.Decision
	StaffID  string
	StartAt  time.Time
	EndAt    time.Time
}
