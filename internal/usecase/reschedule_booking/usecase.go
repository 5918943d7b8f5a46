package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/booking"
)

const operation = "reschedule"

// UseCase перенос бронирования (в том числе перетаскиванием в календаре)
type UseCase struct {
	bookingRepo BookingRepository
	settings    SettingsProvider
	catalogRepo CatalogRepository
	loader      DayContextLoader
	locker      StaffLocker
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsProvider,
	catalogRepo CatalogRepository,
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
		bookingRepo: bookingRepo,
		settings:    settings,
		catalogRepo: catalogRepo,
		loader:      loader,
		locker:      locker,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute переносит бронирование. Само бронирование не считается пересечением.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%s, user=%d, staff=%q, date=%s, time=%s",
		req.BookingID, req.UserID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	// 3. Получаем настройки салона и новый интервал
	settings, err := uc.settings.GetEffective(ctx, booking.SalonID)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get settings for salon=%s: %v", booking.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	date := settings.LocalDate(req.Date)
	start, err := req.StartTime.OnDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end := start.Add(booking.Duration())

	// 4. Проверяем нового мастера
	staffID := booking.StaffID
	if req.StaffID != "" && req.StaffID != booking.StaffID {
		if err := uc.checkStaff(ctx, booking, req.StaffID); err != nil {
			return nil, err
		}
		staffID = req.StaffID
	}

	// 5. Проверяем и сохраняем под блокировкой мастера
	err = uc.locker.WithStaffLock(ctx, staffID, func(ctx context.Context) error {
		return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			current, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrBookingNotFound) {
					return ErrBookingNotFound
				}
				return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
			}
			if !current.CanBeRescheduled() {
				return ErrCannotReschedule
			}

			dc, err := uc.loader.GetDayContext(txCtx, booking.SalonID, []string{staffID}, date)
			if err != nil {
				return fmt.Errorf("%w: failed to load day context: %w", ErrInternal, err)
			}

			proposal := availability.Proposal{
				StaffID:          staffID,
				Start:            start,
				End:              end,
				ExcludeBookingID: booking.ID,
			}
			if booking.ServiceID != nil {
				proposal.ServiceID = *booking.ServiceID
			}

			decision := availability.ValidateBooking(proposal, dc)
			if !decision.OK {
				return &SlotUnavailableError{Reason: decision.Reason}
			}

			if err := uc.bookingRepo.UpdateTime(txCtx, booking.ID, staffID, start, end); err != nil {
				if errors.Is(err, bookingRepo.ErrSlotConflict) {
					return &SlotUnavailableError{Reason: availability.ReasonOverlap}
				}
				return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
			}
			return nil
		})
	})

	if err != nil {
		var rejection *SlotUnavailableError
		switch {
		case errors.As(err, &rejection):
			uc.metrics.IncDecision(operation, string(rejection.Reason))
			uc.logger.Warn("RescheduleBooking: booking=%s rejected with reason=%s", booking.ID, rejection.Reason)
			return nil, err
		case errors.Is(err, lock.ErrLockNotAcquired):
			uc.logger.Warn("RescheduleBooking: staff=%s is locked by another request", staffID)
			return nil, ErrStaffBusy
		case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrCannotReschedule):
			uc.logger.Warn("RescheduleBooking: booking=%s: %v", booking.ID, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("RescheduleBooking: booking=%s: %v", booking.ID, err)
			return nil, err
		default:
			uc.logger.Error("RescheduleBooking: booking=%s: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncDecision(operation, "")
	uc.logger.Info("RescheduleBooking: booking=%s moved to staff=%s, %s", booking.ID, staffID, start.Format(time.RFC3339))

	return &Response{
		ID:              booking.ID,
		SalonID:         booking.SalonID,
		StaffID:         staffID,
		StartAt:         start,
		EndAt:           end,
		DurationMinutes: int(booking.Duration() / time.Minute),
		Status:          string(booking.Status),
	}, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%s has status=%s", id, booking.Status)
		return nil, ErrCannotReschedule
	}
	return booking, nil
}

// checkStaff новый мастер должен работать в салоне и выполнять услугу бронирования
func (uc *UseCase) checkStaff(ctx context.Context, booking *domain.Booking, staffID string) error {
	staff, err := uc.catalogRepo.ListStaff(ctx, booking.SalonID)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to list staff: %v", err)
		return fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	if !slices.ContainsFunc(staff, func(s domain.Staff) bool { return s.ID == staffID }) {
		uc.logger.Warn("RescheduleBooking: staff id=%s not found in salon=%s", staffID, booking.SalonID)
		return ErrStaffNotFound
	}

	if booking.ServiceID == nil {
		return nil
	}

	assignments, err := uc.catalogRepo.ListAssignments(ctx, booking.SalonID)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to list assignments: %v", err)
		return fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
	}
	if !availability.IsEligible(staffID, *booking.ServiceID, assignments) {
		uc.logger.Warn("RescheduleBooking: staff id=%s does not perform service=%s", staffID, *booking.ServiceID)
		return ErrStaffNotEligible
	}
	return nil
}

func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	return nil
}
