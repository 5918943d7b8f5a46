package models

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек салона
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	SalonID         string  `json:"-"`
	BookingMode     *string `json:"bookingMode,omitempty"`
	Timezone        *string `json:"timezone,omitempty"`
	SlotStepMinutes *int    `json:"slotStepMinutes,omitempty"`
}

// SettingsResponse ответ с действующими настройками салона
type SettingsResponse struct {
	SalonID         string     `json:"salonId"`
	BookingMode     string     `json:"bookingMode"`
	Timezone        string     `json:"timezone"`
	SlotStepMinutes int        `json:"slotStepMinutes"`
	IsDefault       bool       `json:"isDefault"` // настройки не сохранены, действуют значения по умолчанию
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует domain модель в response
func FromDomainSettings(s *domain.SalonSettings, isDefault bool) *SettingsResponse {
	resp := &SettingsResponse{
		SalonID:         s.SalonID,
		BookingMode:     string(s.BookingMode),
		Timezone:        s.Timezone,
		SlotStepMinutes: s.SlotStepMinutes,
		IsDefault:       isDefault,
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
