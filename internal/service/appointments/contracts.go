package appointments

import (
	"context"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookedAppointment, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.BookedAppointment, error)
	Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// MonthCache интерфейс кэша помесячной доступности
type MonthCache interface {
	Invalidate(ctx context.Context, tenantID, professionalID int64, year, month int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
