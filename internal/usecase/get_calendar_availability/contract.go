package get_calendar_availability

import (
	"context"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

// SnapshotService интерфейс сервиса снимков календаря
type SnapshotService interface {
	LoadPeriod(ctx context.Context, tenantID int64, startDate, endDate time.Time, professionalIDs []int64) (map[int64]map[string]scheduling.DaySnapshot, error)
}

// MonthCache интерфейс кэша помесячной доступности
// Реализация может отсутствовать (nil-safe на уровне usecase)
type MonthCache interface {
	Get(ctx context.Context, tenantID, professionalID int64, year, month int) (map[string]bool, error)
	Set(ctx context.Context, tenantID, professionalID int64, year, month int, days map[string]bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
