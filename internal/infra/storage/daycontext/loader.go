package daycontext

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
)

// ScheduleReader правила работы и отпуска
type ScheduleReader interface {
	GetOperatingHours(ctx context.Context, salonID string) ([]domain.OperatingHoursRule, error)
	GetStaffHours(ctx context.Context, staffIDs []string) ([]domain.StaffHoursRule, error)
	GetTimeOff(ctx context.Context, staffIDs []string, from, to time.Time) ([]domain.TimeOffRecord, error)
}

// BookingReader занимающие бронирования
type BookingReader interface {
	GetOccupyingByStaff(ctx context.Context, staffIDs []string, from, to time.Time) ([]domain.Booking, error)
}

// Loader собирает снимок дня для ядра доступности
type Loader struct {
	schedule ScheduleReader
	bookings BookingReader
}

func NewLoader(schedule ScheduleReader, bookings BookingReader) *Loader {
	return &Loader{schedule: schedule, bookings: bookings}
}

// GetDayContext загружает правила, бронирования и отпуска, пересекающие локальные сутки date.
// Четыре чтения идут параллельно; первая ошибка отменяет остальные.
// Внутри транзакции чтения выполняются по одному: соединение транзакции не допускает параллельных запросов.
func (l *Loader) GetDayContext(ctx context.Context, salonID string, staffIDs []string, date time.Time) (availability.DayContext, error) {
	y, m, d := date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	to := from.AddDate(0, 0, 1)

	var dc availability.DayContext

	g, gctx := errgroup.WithContext(ctx)
	if dbmetrics.IsInTransaction(ctx) {
		g.SetLimit(1)
	}

	g.Go(func() error {
		rules, err := l.schedule.GetOperatingHours(gctx, salonID)
		if err != nil {
			return fmt.Errorf("operating hours: %w", err)
		}
		dc.SalonHours = rules
		return nil
	})

	g.Go(func() error {
		rules, err := l.schedule.GetStaffHours(gctx, staffIDs)
		if err != nil {
			return fmt.Errorf("staff hours: %w", err)
		}
		dc.StaffHours = rules
		return nil
	})

	g.Go(func() error {
		bookings, err := l.bookings.GetOccupyingByStaff(gctx, staffIDs, from, to)
		if err != nil {
			return fmt.Errorf("bookings: %w", err)
		}
		dc.Bookings = bookings
		return nil
	})

	g.Go(func() error {
		timeOff, err := l.schedule.GetTimeOff(gctx, staffIDs, from, to)
		if err != nil {
			return fmt.Errorf("time off: %w", err)
		}
		dc.TimeOff = timeOff
		return nil
	})

	if err := g.Wait(); err != nil {
		return availability.DayContext{}, fmt.Errorf("GetDayContext: salon=%s, date=%s: %w", salonID, from.Format(domain.DateFormat), err)
	}

	return dc, nil
}
