package build_itineraries

import (
	"context"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

// SnapshotService интерфейс сервиса снимков календаря
type SnapshotService interface {
	LoadDay(ctx context.Context, tenantID int64, date time.Time, professionalIDs []int64) (map[int64]scheduling.DaySnapshot, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetServices(ctx context.Context, tenantID int64, serviceIDs []int64) ([]catalogservice.Service, error)
}

// StationRepository интерфейс репозитория станций
type StationRepository interface {
	GetActiveByTypes(ctx context.Context, tenantID int64, stationTypes []string) (map[string][]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
