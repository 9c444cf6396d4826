package build_itineraries

import (
	"context"

	buildItineraries "github.com/m04kA/BMS-SchedulingService/internal/usecase/build_itineraries"
)

type BuildItinerariesUseCase interface {
	Execute(ctx context.Context, req *buildItineraries.Request) (*buildItineraries.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
