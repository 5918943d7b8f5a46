package validate_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	validateBooking "github.com/m04kA/SMC-SalonAvailability/internal/usecase/validate_booking"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// ValidateBookingRequest HTTP request model
type ValidateBookingRequest struct {
	ServiceID        string `json:"serviceId"`
	StaffID          string `json:"staffId,omitempty"`
	Date             string `json:"date"`              // "2025-10-15"
	StartTime        string `json:"startTime"`         // "10:00"
	EndTime          string `json:"endTime,omitempty"` // по умолчанию по длительности услуги
	ExcludeBookingID string `json:"excludeBookingId,omitempty"`
}

// DecisionResponse решение: ok=false с reason, если интервал недоступен
type DecisionResponse struct {
	OK      bool   `json:"ok"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
	StaffID string `json:"staffId,omitempty"`
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateBookingRequest) ToUseCaseRequest(salonID string) (*validateBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	var endTime types.TimeString
	if r.EndTime != "" {
		endTime, err = types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("endTime: %w", err)
		}
	}

	return &validateBooking.Request{
		SalonID:          salonID,
		StaffID:          r.StaffID,
		ServiceID:        r.ServiceID,
		Date:             date,
		StartTime:        startTime,
		EndTime:          endTime,
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}

func FromUseCaseResponse(resp *validateBooking.Response) *DecisionResponse {
	out := &DecisionResponse{
		OK:      resp.Decision.OK,
		StaffID: resp.StaffID,
		StartAt: resp.StartAt.Format(time.RFC3339),
		EndAt:   resp.EndAt.Format(time.RFC3339),
	}
	if !resp.Decision.OK {
		out.Reason = string(resp.Decision.Reason)
		out.Message = handlers.RejectionMessage(resp.Decision.Reason)
	}
	return out
}
