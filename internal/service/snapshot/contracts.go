package snapshot

import (
	"context"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// CalendarRepository интерфейс репозитория календаря мастеров
type CalendarRepository interface {
	GetWorkingWindowsForProfessionals(ctx context.Context, professionalIDs []int64) ([]domain.WorkingWindow, error)
	GetBreakWindowsForProfessionals(ctx context.Context, professionalIDs []int64) ([]domain.BreakWindow, error)
	GetBlockedPeriodsInPeriod(ctx context.Context, professionalIDs []int64, startDate, endDate time.Time) ([]domain.BlockedPeriod, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByProfessionalWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.BookedAppointment, error)
	GetForProfessionalsInPeriod(ctx context.Context, professionalIDs []int64, startDate, endDate time.Time) ([]*domain.BookedAppointment, error)
}

// ConfigRepository интерфейс репозитория конфигурации размера блока
type ConfigRepository interface {
	GetConfigWithHierarchy(ctx context.Context, tenantID int64, professionalID *int64) (*domain.TenantSlotsConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
