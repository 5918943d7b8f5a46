package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents an appointment of a client with a staff member
type Booking struct {
	ID        string
	SalonID   string
	StaffID   string
	ServiceID *string // NULL для блокировок времени, созданных администратором
	UserID    *int64
	StartAt   time.Time
	EndAt     time.Time
	Status    BookingStatus
	Notes     *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking takes the staff member's time
func (b *Booking) IsOccupying() bool {
	return b.Status.IsOccupying()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another time
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Duration returns the booked interval length
func (b *Booking) Duration() time.Duration {
	return b.EndAt.Sub(b.StartAt)
}

// IsOccupying returns true for statuses that count toward conflict checks
func (s BookingStatus) IsOccupying() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// legacyStatusTags теги статуса, которые старые клиенты дописывали в notes.
// Порядок важен: при нескольких тегах побеждает первый.
var legacyStatusTags = []struct {
	tag    string
	status BookingStatus
}{
	{tag: "[status:completed]", status: StatusCompleted},
	{tag: "[status:no_show]", status: StatusNoShow},
}

// ResolveLegacyStatus возвращает статус с учетом тегов в notes.
// Только для чтения старых строк: новые записи хранят статус в колонке status.
func ResolveLegacyStatus(status BookingStatus, notes *string) BookingStatus {
	if status != StatusConfirmed || notes == nil {
		return status
	}
	for _, legacy := range legacyStatusTags {
		if strings.Contains(*notes, legacy.tag) {
			return legacy.status
		}
	}
	return status
}
