package validate_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

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
