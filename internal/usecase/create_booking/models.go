package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID клиента из X-User-ID
	SalonID   string           // ID салона
	ServiceID string           // ID услуги, длительность берется из нее
	StaffID   string           // пусто - автоназначение в режиме auto_assign
	Date      time.Time        // календарная дата салона
	StartTime types.TimeString // время начала по часам салона, "10:00"
	Notes     *string          // заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	SalonID         string
	StaffID         string
	ServiceID       string
	UserID          int64
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	Status          string
	AutoAssigned    bool // мастер выбран сервисом
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
