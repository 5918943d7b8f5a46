package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SalonAvailability/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID string  `json:"serviceId"`
	StaffID   string  `json:"staffId,omitempty"` // пусто - автоназначение в режиме auto_assign
	Date      string  `json:"date"`              // "2025-10-15"
	StartTime string  `json:"startTime"`         // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	SalonID         string  `json:"salonId"`
	StaffID         string  `json:"staffId"`
	ServiceID       string  `json:"serviceId"`
	UserID          int64   `json:"userId"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	AutoAssigned    bool    `json:"autoAssigned"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest(salonID string, userID int64) (*createBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	return &createBooking.Request{
		UserID:    userID,
		SalonID:   salonID,
		ServiceID: r.ServiceID,
		StaffID:   r.StaffID,
		Date:      date,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		SalonID:         resp.SalonID,
		StaffID:         resp.StaffID,
		ServiceID:       resp.ServiceID,
		UserID:          resp.UserID,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		EndAt:           resp.EndAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		AutoAssigned:    resp.AutoAssigned,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
