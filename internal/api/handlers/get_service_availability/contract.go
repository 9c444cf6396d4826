package get_service_availability

import (
	"context"

	getServiceAvailability "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_service_availability"
)

type GetServiceAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getServiceAvailability.Request) (*getServiceAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
