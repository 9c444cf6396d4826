package get_calendar_availability

import (
	"context"

	getCalendarAvailability "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_calendar_availability"
)

type GetCalendarAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getCalendarAvailability.Request) (*getCalendarAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
