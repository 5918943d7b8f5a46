package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// SettingsProvider действующие настройки салона (с учетом значений по умолчанию)
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

// Metrics интерфейс метрик генерации слотов
type Metrics interface {
	ObserveSlots(mode string, count int)
}

type nopMetrics struct{}

func (nopMetrics) ObserveSlots(string, int) {}

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
