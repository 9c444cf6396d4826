package get_service_availability

import (
	"context"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

// SnapshotService интерфейс сервиса снимков календаря
type SnapshotService interface {
	LoadPeriod(ctx context.Context, tenantID int64, startDate, endDate time.Time, professionalIDs []int64) (map[int64]map[string]scheduling.DaySnapshot, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetService(ctx context.Context, tenantID, serviceID int64) (*catalogservice.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
