package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.BookedAppointment) (*domain.BookedAppointment, error)
}

// SnapshotService интерфейс сервиса снимков календаря
type SnapshotService interface {
	LoadDay(ctx context.Context, tenantID int64, date time.Time, professionalIDs []int64) (map[int64]scheduling.DaySnapshot, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetService(ctx context.Context, tenantID, serviceID int64) (*catalogservice.Service, error)
}

// MonthCache интерфейс кэша помесячной доступности
type MonthCache interface {
	Invalidate(ctx context.Context, tenantID, professionalID int64, year, month int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
