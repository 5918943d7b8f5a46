package get_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
)

// UseCase сетка календаря мастера с причиной занятости каждой ячейки
type UseCase struct {
	settings     SettingsProvider
	staffRepo    StaffRepository
	loader       DayContextLoader
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settings SettingsProvider,
	staffRepo StaffRepository,
	loader DayContextLoader,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:     settings,
		staffRepo:    staffRepo,
		loader:       loader,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case построения сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetGrid: salon=%s, staff=%s, date=%s, duration=%d",
		req.SalonID, req.StaffID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем мастера
	staff, err := uc.staffRepo.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetGrid: staff id=%s not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetGrid: failed to get staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if staff.SalonID != req.SalonID {
		uc.logger.Warn("GetGrid: staff id=%s belongs to salon=%s", req.StaffID, staff.SalonID)
		return nil, ErrStaffNotFound
	}

	// 3. Получаем настройки салона
	settings, err := uc.settings.GetEffective(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("GetGrid: failed to get settings for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	date := settings.LocalDate(req.Date)

	duration := req.DurationMinutes
	if duration == 0 {
		duration = settings.SlotStepMinutes
	}

	// 4. Загружаем расписание мастера на день
	dc, err := uc.loader.GetDayContext(ctx, req.SalonID, []string{req.StaffID}, date)
	if err != nil {
		uc.logger.Error("GetGrid: failed to load day context: %v", err)
		return nil, fmt.Errorf("%w: failed to load day context: %v", ErrInternal, err)
	}

	// 5. Строим сетку
	grid := availability.Grid(availability.SlotParams{
		Date:            date,
		StaffIDs:        []string{req.StaffID},
		DurationMinutes: duration,
		StepMinutes:     settings.SlotStepMinutes,
		Now:             uc.timeProvider.Now(),
		Context:         dc,
	}, req.StaffID)

	cells := make([]Cell, 0, len(grid))
	free := 0
	for _, s := range grid {
		cells = append(cells, Cell{
			StartAt:   s.Start,
			EndAt:     s.End,
			Available: s.Decision.OK,
			Reason:    s.Decision.Reason,
		})
		if s.Decision.OK {
			free++
		}
	}

	uc.logger.Info("GetGrid: built %d cells (%d free) for staff=%s, date=%s",
		len(cells), free, req.StaffID, date.Format(domain.DateFormat))

	return &Response{
		Date:            date,
		StaffID:         req.StaffID,
		StepMinutes:     settings.SlotStepMinutes,
		DurationMinutes: duration,
		Cells:           cells,
	}, nil
}

func validateRequest(req *Request) error {
	if req.SalonID == "" || req.StaffID == "" {
		return fmt.Errorf("%w: salonID and staffID are required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d", ErrInvalidInput,
			domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
