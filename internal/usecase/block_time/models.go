package block_time

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// MaxReasonLength максимальная длина причины блокировки
const MaxReasonLength = 255

// Request блокировка времени мастера без услуги
type Request struct {
	SalonID   string
	StaffID   string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    *string
}

// Response созданная блокировка
type Response struct {
	ID        string
	StaffID   string
	StartAt   time.Time
	EndAt     time.Time
	Reason    *string
	CreatedAt time.Time
}
