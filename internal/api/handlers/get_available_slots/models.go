package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string         `json:"date"`
	SalonID         string         `json:"salonId"`
	ServiceID       string         `json:"serviceId"`
	BookingMode     string         `json:"bookingMode"`
	DurationMinutes int            `json:"durationMinutes"`
	StepMinutes     int            `json:"stepMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	StaffID   string `json:"staffId"`
	StartTime string `json:"startTime"` // "10:00" по часам салона
	StartAt   string `json:"startAt"`
	EndAt     string `json:"endAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StaffID:   s.StaffID,
			StartTime: types.NewTimeString(s.StartAt).String(),
			StartAt:   s.StartAt.Format(time.RFC3339),
			EndAt:     s.EndAt.Format(time.RFC3339),
		})
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		SalonID:         resp.SalonID,
		ServiceID:       resp.ServiceID,
		BookingMode:     string(resp.Mode),
		DurationMinutes: resp.DurationMinutes,
		StepMinutes:     resp.StepMinutes,
		Slots:           slots,
	}
}
