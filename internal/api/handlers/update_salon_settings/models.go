package update_salon_settings

import (
	"github.com/m04kA/SMC-SalonAvailability/internal/service/settings/models"
)

// UpdateSalonSettingsRequest HTTP request model, все поля опциональны
type UpdateSalonSettingsRequest struct {
	BookingMode     *string `json:"bookingMode,omitempty"`
	Timezone        *string `json:"timezone,omitempty"`
	SlotStepMinutes *int    `json:"slotStepMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSalonSettingsRequest) ToServiceRequest(salonID string) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		SalonID:         salonID,
		BookingMode:     r.BookingMode,
		Timezone:        r.Timezone,
		SlotStepMinutes: r.SlotStepMinutes,
	}
}
