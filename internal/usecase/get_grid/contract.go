package get_grid

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

// StaffRepository интерфейс чтения мастеров
type StaffRepository interface {
	GetStaff(ctx context.Context, staffID string) (*domain.Staff, error)
}

// DayContextLoader загружает снимок расписания на локальные сутки
type DayContextLoader interface {
	GetDayContext(ctx context.Context, salonID string, staffIDs []string, date time.Time) (availability.DayContext, error)
}

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
