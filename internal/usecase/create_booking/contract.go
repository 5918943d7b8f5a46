package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SettingsProvider действующие настройки салона
type SettingsProvider interface {
	GetEffective(ctx context.Context, salonID string) (*domain.SalonSettings, error)
}

// CatalogRepository интерфейс репозитория мастеров и услуг
type CatalogRepository interface {
	GetService(ctx context.Context, serviceID string) (*domain.Service, error)
	ListStaff(ctx context.Context, salonID string) ([]domain.Staff, error)
	ListAssignments(ctx context.Context, salonID string) ([]domain.StaffServiceAssignment, error)
}

// DayContextLoader загружает снимок расписания на локальные сутки
type DayContextLoader interface {
	GetDayContext(ctx context.Context, salonID string, staffIDs []string, date time.Time) (availability.DayContext, error)
}

// StaffLocker критическая секция на мастера: чтение, проверка и запись идут под ней
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

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
