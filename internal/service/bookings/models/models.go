package models

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64   `json:"-"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest запрос на закрытие визита: completed или no_show
type UpdateStatusRequest struct {
	UserID int64  `json:"-"`
	Status string `json:"status"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string  `json:"id"`
	SalonID         string  `json:"salonId"`
	StaffID         string  `json:"staffId"`
	ServiceID       *string `json:"serviceId,omitempty"`
	UserID          *int64  `json:"userId,omitempty"`
	StartAt         string  `json:"startAt"` // RFC 3339 со смещением салона
	EndAt           string  `json:"endAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		SalonID:            b.SalonID,
		StaffID:            b.StaffID,
		ServiceID:          b.ServiceID,
		UserID:             b.UserID,
		StartAt:            b.StartAt.Format(time.RFC3339),
		EndAt:              b.EndAt.Format(time.RFC3339),
		DurationMinutes:    int(b.Duration() / time.Minute),
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// ToClosingStatus конвертирует строку в статус закрытия визита
func ToClosingStatus(status string) (domain.BookingStatus, bool) {
	s := domain.BookingStatus(status)
	if s == domain.StatusCompleted || s == domain.StatusNoShow {
		return s, true
	}
	return "", false
}
