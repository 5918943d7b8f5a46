package settings

import (
	"context"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	Get(ctx context.Context, salonID string) (*domain.SalonSettings, error)
	Upsert(ctx context.Context, settings *domain.SalonSettings) (*domain.SalonSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
