package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
)

const operation = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsProvider
	catalogRepo  CatalogRepository
	loader       DayContextLoader
	locker       StaffLocker
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
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
		bookingRepo:  bookingRepo,
		settings:     settings,
		catalogRepo:  catalogRepo,
		loader:       loader,
		locker:       locker,
		txManager:    txManager,
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

// Execute выполняет use case создания бронирования.
// Проверка и запись идут под блокировкой мастера в сериализуемой транзакции;
// ограничение bookings_no_overlap в БД остается последней защитой от двойной записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, salon=%s, service=%s, staff=%q, date=%s, time=%s",
		req.UserID, req.SalonID, req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки салона
	settings, err := uc.settings.GetEffective(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get settings for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 3. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.SalonID != req.SalonID {
		uc.logger.Warn("CreateBooking: service id=%s belongs to salon=%s", req.ServiceID, service.SalonID)
		return nil, ErrServiceNotFound
	}

	// 4. Вычисляем интервал по часам салона
	date := settings.LocalDate(req.Date)
	start, err := req.StartTime.OnDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// 5. Проверяем минимальный запас до начала
	now := uc.timeProvider.Now()
	if start.Before(now.Add(domain.MinLeadTimeMinutes * time.Minute)) {
		uc.logger.Warn("CreateBooking: start=%s is earlier than now+%dm", start.Format(time.RFC3339), domain.MinLeadTimeMinutes)
		return nil, ErrTooLateToBook
	}

	// 6. Определяем мастеров-кандидатов
	staff, err := uc.catalogRepo.ListStaff(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	assignments, err := uc.catalogRepo.ListAssignments(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
	}

	candidates, err := candidateStaff(req, settings.BookingMode, staff, assignments)
	if err != nil {
		uc.logger.Warn("CreateBooking: staff selection failed: %v", err)
		return nil, err
	}
	if len(candidates) == 0 {
		uc.logger.Warn("CreateBooking: no eligible staff for service=%s", req.ServiceID)
		uc.metrics.IncDecision(operation, string(availability.ReasonSlotUnavailable))
		return nil, &SlotUnavailableError{Reason: availability.ReasonSlotUnavailable}
	}

	booking := &domain.Booking{
		SalonID:   req.SalonID,
		ServiceID: &req.ServiceID,
		UserID:    &req.UserID,
		StartAt:   start,
		EndAt:     end,
		Status:    domain.StatusConfirmed,
		Notes:     req.Notes,
	}

	// 7. Пробуем мастеров по порядку: первый, кто проходит проверку, получает запись.
	// При отказе всех возвращается причина первого мастера.
	var firstErr error
	for _, staffID := range candidates {
		created, err := uc.bookForStaff(ctx, date, staffID, booking)
		if err == nil {
			uc.metrics.IncDecision(operation, "")
			uc.logger.Info("CreateBooking: successfully created booking id=%s for staff=%s", created.ID, staffID)
			return toResponse(created, req.StaffID == ""), nil
		}

		var rejection *SlotUnavailableError
		if !errors.As(err, &rejection) && !errors.Is(err, ErrStaffBusy) {
			uc.logger.Error("CreateBooking: failed for staff=%s: %v", staffID, err)
			return nil, err
		}
		uc.logger.Warn("CreateBooking: staff=%s rejected: %v", staffID, err)
		if firstErr == nil {
			firstErr = err
		}
	}

	var rejection *SlotUnavailableError
	if errors.As(firstErr, &rejection) {
		uc.metrics.IncDecision(operation, string(rejection.Reason))
	}
	return nil, firstErr
}

// bookForStaff проверяет интервал и сохраняет бронирование под блокировкой мастера
func (uc *UseCase) bookForStaff(ctx context.Context, date time.Time, staffID string, draft *domain.Booking) (*domain.Booking, error) {
	var result *domain.Booking

	err := uc.locker.WithStaffLock(ctx, staffID, func(ctx context.Context) error {
		return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			// Перечитываем день внутри транзакции: бронирования мастера блокируются FOR UPDATE
			dc, err := uc.loader.GetDayContext(txCtx, draft.SalonID, []string{staffID}, date)
			if err != nil {
				return fmt.Errorf("%w: failed to load day context: %w", ErrInternal, err)
			}

			decision := availability.ValidateBooking(availability.Proposal{
				StaffID:   staffID,
				ServiceID: *draft.ServiceID,
				Start:     draft.StartAt,
				End:       draft.EndAt,
			}, dc)
			if !decision.OK {
				return &SlotUnavailableError{Reason: decision.Reason}
			}

			booking := *draft
			booking.ID = ""
			booking.StaffID = staffID

			created, err := uc.bookingRepo.Create(txCtx, &booking)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrSlotConflict) {
					return &SlotUnavailableError{Reason: availability.ReasonOverlap}
				}
				return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
			}

			result = created
			return nil
		})
	})

	if errors.Is(err, lock.ErrLockNotAcquired) {
		return nil, ErrStaffBusy
	}
	if err != nil && !errors.Is(err, ErrSlotNotAvailable) && !errors.Is(err, ErrInternal) {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return result, err
}

func toResponse(b *domain.Booking, autoAssigned bool) *Response {
	resp := &Response{
		ID:              b.ID,
		SalonID:         b.SalonID,
		StaffID:         b.StaffID,
		StartAt:         b.StartAt,
		EndAt:           b.EndAt,
		DurationMinutes: int(b.Duration() / time.Minute),
		Status:          string(b.Status),
		AutoAssigned:    autoAssigned,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.ServiceID != nil {
		resp.ServiceID = *b.ServiceID
	}
	if b.UserID != nil {
		resp.UserID = *b.UserID
	}
	return resp
}
