package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/settings/models"
)

// Defaults значения для салонов без сохраненных настроек
type Defaults struct {
	BookingMode     domain.BookingMode
	Timezone        string
	SlotStepMinutes int
}

// Service сервис настроек бронирования салона
type Service struct {
	repo     SettingsRepository
	defaults Defaults
	logger   Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, defaults Defaults, logger Logger) *Service {
	if !defaults.BookingMode.IsValid() {
		defaults.BookingMode = domain.DefaultBookingMode
	}
	if defaults.Timezone == "" {
		defaults.Timezone = domain.DefaultTimezone
	}
	if defaults.SlotStepMinutes <= 0 {
		defaults.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	return &Service{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
	}
}

// Get возвращает действующие настройки салона
func (s *Service) Get(ctx context.Context, salonID string) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for salon=%s", salonID)

	if salonID == "" {
		return nil, fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	settings, isDefault, err := s.load(ctx, salonID)
	if err != nil {
		s.logger.Error("Get: repository error for salon=%s: %v", salonID, err)
		return nil, err
	}

	return models.FromDomainSettings(settings, isDefault), nil
}

// GetEffective возвращает настройки салона, подставляя значения по умолчанию.
// Используется сценариями генерации слотов и записи.
func (s *Service) GetEffective(ctx context.Context, salonID string) (*domain.SalonSettings, error) {
	settings, _, err := s.load(ctx, salonID)
	if err != nil {
		s.logger.Error("GetEffective: repository error for salon=%s: %v", salonID, err)
		return nil, err
	}
	return settings, nil
}

// Update обновляет переданные поля настроек салона
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for salon=%s", req.SalonID)

	if req.SalonID == "" {
		return nil, fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	// 1. Получаем текущие настройки (или значения по умолчанию)
	settings, _, err := s.load(ctx, req.SalonID)
	if err != nil {
		s.logger.Error("Update: repository error for salon=%s: %v", req.SalonID, err)
		return nil, err
	}

	// 2. Применяем изменения
	if req.BookingMode != nil {
		settings.BookingMode = domain.BookingMode(*req.BookingMode)
	}
	if req.Timezone != nil {
		settings.Timezone = *req.Timezone
	}
	if req.SlotStepMinutes != nil {
		settings.SlotStepMinutes = *req.SlotStepMinutes
	}

	// 3. Валидируем результат
	if err := validateSettings(settings); err != nil {
		s.logger.Warn("Update: validation failed for salon=%s: %v", req.SalonID, err)
		return nil, err
	}

	// 4. Сохраняем
	saved, err := s.repo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved for salon=%s, mode=%s, timezone=%s, step=%d",
		saved.SalonID, saved.BookingMode, saved.Timezone, saved.SlotStepMinutes)
	return models.FromDomainSettings(saved, false), nil
}

func (s *Service) load(ctx context.Context, salonID string) (*domain.SalonSettings, bool, error) {
	settings, err := s.repo.Get(ctx, salonID)
	if err == nil {
		return settings, false, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return nil, false, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	return &domain.SalonSettings{
		SalonID:         salonID,
		BookingMode:     s.defaults.BookingMode,
		Timezone:        s.defaults.Timezone,
		SlotStepMinutes: s.defaults.SlotStepMinutes,
	}, true, nil
}

func validateSettings(settings *domain.SalonSettings) error {
	if !settings.BookingMode.IsValid() {
		return fmt.Errorf("%w: bookingMode must be %s or %s", ErrInvalidInput,
			domain.ModeChooseEmployee, domain.ModeAutoAssign)
	}

	if settings.SlotStepMinutes < domain.MinSlotStepMinutes || settings.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: slotStepMinutes must be between %d and %d", ErrInvalidInput,
			domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}

	if settings.Timezone == "" {
		return fmt.Errorf("%w: timezone is required", ErrInvalidInput)
	}
	if _, err := time.LoadLocation(settings.Timezone); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimezone, settings.Timezone)
	}

	return nil
}
