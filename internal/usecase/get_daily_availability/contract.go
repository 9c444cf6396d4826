package get_daily_availability

import (
	"context"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

// SnapshotService интерфейс сервиса снимков календаря
type SnapshotService interface {
	LoadDay(ctx context.Context, tenantID int64, date time.Time, professionalIDs []int64) (map[int64]scheduling.DaySnapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
