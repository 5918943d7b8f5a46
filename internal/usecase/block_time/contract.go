package block_time

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// TimeOffRepository запись блокировок времени мастера
type TimeOffRepository interface {
	CreateTimeOff(ctx context.Context, rec *domain.TimeOffRecord) (*domain.TimeOffRecord, error)
}

// StaffRepository интерфейс чтения мастеров
type StaffRepository interface {
	GetStaff(ctx context.Context, staffID string) (*domain.Staff, error)
}

// SettingsProvider действующие настройки салона
type SettingsProvider interface {
	GetEffective(ctx context.Context, salonID string) (*domain.SalonSettings, error)
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
