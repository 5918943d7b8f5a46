package validate_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
)

const operation = "validate"

// UseCase пробная проверка интервала без записи.
// Отвечает тем же решением, которое получит создание или перенос на тех же данных.
type UseCase struct {
	settings    SettingsProvider
	catalogRepo CatalogRepository
	loader      DayContextLoader
	metrics     Metrics
	logger      Logger
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
		settings:    settings,
		catalogRepo: catalogRepo,
		loader:      loader,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет пробную проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateBooking: salon=%s, staff=%q, service=%q, date=%s, start=%s, end=%s",
		req.SalonID, req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки салона и переводим время в его часовой пояс
	settings, err := uc.settings.GetEffective(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to get settings for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	date := settings.LocalDate(req.Date)

	start, err := req.StartTime.OnDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	// 3. Определяем конец интервала
	var end time.Time
	if req.ServiceID != "" {
		service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("ValidateBooking: service id=%s not found", req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("ValidateBooking: failed to get service id=%s: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if service.SalonID != req.SalonID {
			return nil, ErrServiceNotFound
		}
		end = start.Add(time.Duration(service.DurationMinutes) * time.Minute)
	}
	if !req.EndTime.IsZero() {
		if end, err = req.EndTime.OnDate(date); err != nil {
			return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
	}

	// 4. Определяем мастеров
	staff, err := uc.catalogRepo.ListStaff(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	assignments, err := uc.catalogRepo.ListAssignments(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to list assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
	}

	staffIDs, err := candidateStaff(req, settings.BookingMode, staff, assignments)
	if err != nil {
		uc.logger.Warn("ValidateBooking: staff selection failed: %v", err)
		return nil, err
	}

	response := &Response{StartAt: start, EndAt: end}

	// 5. Загружаем день и проверяем интервал
	var decision availability.Decision
	if len(staffIDs) == 0 {
		decision = availability.Reject(availability.ReasonSlotUnavailable)
	} else {
		dc, err := uc.loader.GetDayContext(ctx, req.SalonID, staffIDs, date)
		if err != nil {
			uc.logger.Error("ValidateBooking: failed to load day context: %v", err)
			return nil, fmt.Errorf("%w: failed to load day context: %v", ErrInternal, err)
		}

		response.StaffID, decision = availability.AssignFirstAvailable(availability.Proposal{
			ServiceID:        req.ServiceID,
			Start:            start,
			End:              end,
			ExcludeBookingID: req.ExcludeBookingID,
		}, staffIDs, dc)
	}
	response.Decision = decision

	uc.metrics.IncDecision(operation, string(decision.Reason))
	if decision.OK {
		uc.logger.Info("ValidateBooking: ok for staff=%s, %s-%s", response.StaffID,
			start.Format(domain.TimeFormat), end.Format(domain.TimeFormat))
	} else {
		uc.logger.Info("ValidateBooking: rejected with reason=%s", decision.Reason)
	}

	return response, nil
}
