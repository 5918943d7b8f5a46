package reschedule_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateTime(ctx context.Context, id, staffID string, startAt, endAt time.Time) error
}

// SettingsProvider действующие настройки салона
type SettingsProvider interface {
	GetEffective(ctx context.Context, salonID string) (*domain.SalonSettings, error)
}

// CatalogRepository интерфейс репозитория мастеров
type CatalogRepository interface {
	ListStaff(ctx context.Context, salonID string) ([]domain.Staff, error)
	ListAssignments(ctx context.Context, salonID string) ([]domain.StaffServiceAssignment, error)
}

// DayContextLoader загружает снимок расписания на локальные сутки
type DayContextLoader interface {
	GetDayContext(ctx context.Context, salonID string, staffIDs []string, date time.Time) (availability.DayContext, error)
}

// StaffLocker критическая секция на мастера
type StaffLocker interface {
	WithStaffLock(ctx context.Context, staffID string, fn func(ctx context.Context) error) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик решений валидатора
type Metrics interface {
	IncDecision(operation, reason string)
}

type nopMetrics struct{}

func (nopMetrics) IncDecision(string, string) {}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
