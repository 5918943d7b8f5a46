package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonID   string
	ServiceID string
	StaffID   string    // пусто - выбор мастера по режиму салона
	Date      time.Time // календарная дата салона, время и часовой пояс игнорируются
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // полночь даты в часовом поясе салона
	SalonID         string
	ServiceID       string
	Mode            domain.BookingMode
	DurationMinutes int
	StepMinutes     int
	Slots           []Slot
}

// Slot свободное время начала и мастер, за которым оно закреплено
type Slot struct {
	StaffID string
	StartAt time.Time
	EndAt   time.Time
}
