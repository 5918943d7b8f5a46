package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	settings     SettingsProvider
	catalogRepo  CatalogRepository
	loader       DayContextLoader
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settings SettingsProvider,
	catalogRepo CatalogRepository,
	loader DayContextLoader,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		settings:     settings,
		catalogRepo:  catalogRepo,
		loader:       loader,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: salon=%s, service=%s, staff=%q, date=%s",
		req.SalonID, req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки салона
	settings, err := uc.settings.GetEffective(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	date := settings.LocalDate(req.Date)

	// 3. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.SalonID != req.SalonID {
		uc.logger.Warn("GetAvailableSlots: service id=%s belongs to salon=%s", req.ServiceID, service.SalonID)
		return nil, ErrServiceNotFound
	}

	// 4. Получаем мастеров и их допуски к услугам
	staff, err := uc.catalogRepo.ListStaff(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	assignments, err := uc.catalogRepo.ListAssignments(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
	}

	// 5. Определяем мастеров по режиму салона
	staffIDs, err := selectStaff(req, settings.BookingMode, staff, assignments)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: staff selection failed: %v", err)
		return nil, err
	}

	response := &Response{
		Date:            date,
		SalonID:         req.SalonID,
		ServiceID:       req.ServiceID,
		Mode:            settings.BookingMode,
		DurationMinutes: service.DurationMinutes,
		StepMinutes:     settings.SlotStepMinutes,
		Slots:           []Slot{},
	}

	if len(staffIDs) == 0 {
		uc.logger.Info("GetAvailableSlots: no eligible staff for service=%s", req.ServiceID)
		uc.metrics.ObserveSlots(string(settings.BookingMode), 0)
		return response, nil
	}

	// 6. Загружаем расписание, бронирования и отсутствия на день
	dc, err := uc.loader.GetDayContext(ctx, req.SalonID, staffIDs, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load day context: %v", err)
		return nil, fmt.Errorf("%w: failed to load day context: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты
	for c := range availability.Slots(availability.SlotParams{
		Date:            date,
		StaffIDs:        staffIDs,
		DurationMinutes: service.DurationMinutes,
		StepMinutes:     settings.SlotStepMinutes,
		Now:             uc.timeProvider.Now(),
		Context:         dc,
	}) {
		response.Slots = append(response.Slots, Slot{StaffID: c.StaffID, StartAt: c.Start, EndAt: c.End})
	}

	uc.metrics.ObserveSlots(string(settings.BookingMode), len(response.Slots))
	uc.logger.Info("GetAvailableSlots: generated %d slots for salon=%s, service=%s, date=%s",
		len(response.Slots), req.SalonID, req.ServiceID, date.Format(domain.DateFormat))

	return response, nil
}
