package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	rescheduleBooking "github.com/m04kA/SMC-SalonAvailability/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	StaffID   string `json:"staffId,omitempty"` // пусто - тот же мастер
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	ID              string `json:"id"`
	SalonID         string `json:"salonId"`
	StaffID         string `json:"staffId"`
	StartAt         string `json:"startAt"`
	EndAt           string `json:"endAt"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
}

func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID string, userID int64) (*rescheduleBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		StaffID:   r.StaffID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		ID:              resp.ID,
		SalonID:         resp.SalonID,
		StaffID:         resp.StaffID,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		EndAt:           resp.EndAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
	}
}
