package block_time

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/lock"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/schedule"
)

const operation = "block"

// UseCase блокировка времени мастера администратором
type UseCase struct {
	timeOffRepo TimeOffRepository
	staffRepo   StaffRepository
	settings    SettingsProvider
	loader      DayContextLoader
	locker      StaffLocker
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeOffRepo TimeOffRepository,
	staffRepo StaffRepository,
	settings SettingsProvider,
	loader DayContextLoader,
	locker StaffLocker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		timeOffRepo: timeOffRepo,
		staffRepo:   staffRepo,
		settings:    settings,
		loader:      loader,
		locker:      locker,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute проверяет интервал как обычное бронирование и сохраняет его как отсутствие мастера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockTime: salon=%s, staff=%s, date=%s, %s-%s",
		req.SalonID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlockTime: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем мастера
	staff, err := uc.staffRepo.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("BlockTime: staff id=%s not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("BlockTime: failed to get staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if staff.SalonID != req.SalonID {
		uc.logger.Warn("BlockTime: staff id=%s belongs to salon=%s", req.StaffID, staff.SalonID)
		return nil, ErrStaffNotFound
	}

	// 3. Интервал в часовом поясе салона
	settings, err := uc.settings.GetEffective(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("BlockTime: failed to get settings for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	date := settings.LocalDate(req.Date)
	start, err := req.StartTime.OnDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := req.EndTime.OnDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	// 4. Проверяем и сохраняем под блокировкой мастера
	var created *domain.TimeOffRecord
	err = uc.locker.WithStaffLock(ctx, req.StaffID, func(ctx context.Context) error {
		return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			dc, err := uc.loader.GetDayContext(txCtx, req.SalonID, []string{req.StaffID}, date)
			if err != nil {
				return fmt.Errorf("%w: failed to load day context: %w", ErrInternal, err)
			}

			decision := availability.ValidateBooking(availability.Proposal{
				StaffID: req.StaffID,
				Start:   start,
				End:     end,
			}, dc)
			if !decision.OK {
				return &SlotUnavailableError{Reason: decision.Reason}
			}

			created, err = uc.timeOffRepo.CreateTimeOff(txCtx, &domain.TimeOffRecord{
				StaffID: req.StaffID,
				StartAt: start,
				EndAt:   end,
				Reason:  req.Reason,
			})
			if err != nil {
				if errors.Is(err, scheduleRepo.ErrTimeOffConflict) {
					return &SlotUnavailableError{Reason: availability.ReasonTimeOff}
				}
				return fmt.Errorf("%w: failed to create time off: %w", ErrInternal, err)
			}
			return nil
		})
	})

	if err != nil {
		var rejection *SlotUnavailableError
		switch {
		case errors.As(err, &rejection):
			uc.metrics.IncDecision(operation, string(rejection.Reason))
			uc.logger.Warn("BlockTime: staff=%s rejected with reason=%s", req.StaffID, rejection.Reason)
			return nil, err
		case errors.Is(err, lock.ErrLockNotAcquired):
			uc.logger.Warn("BlockTime: staff=%s is locked by another request", req.StaffID)
			return nil, ErrStaffBusy
		case errors.Is(err, ErrInternal):
			uc.logger.Error("BlockTime: staff=%s: %v", req.StaffID, err)
			return nil, err
		default:
			uc.logger.Error("BlockTime: staff=%s: %v", req.StaffID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncDecision(operation, "")
	uc.logger.Info("BlockTime: created time off id=%s for staff=%s", created.ID, created.StaffID)

	return &Response{
		ID:        created.ID,
		StaffID:   created.StaffID,
		StartAt:   created.StartAt,
		EndAt:     created.EndAt,
		Reason:    created.Reason,
		CreatedAt: created.CreatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req.SalonID == "" || req.StaffID == "" {
		return fmt.Errorf("%w: salonID and staffID are required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, MaxReasonLength)
	}
	return nil
}
