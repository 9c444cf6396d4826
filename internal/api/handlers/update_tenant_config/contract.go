package update_tenant_config

import (
	"context"

	"github.com/m04kA/BMS-SchedulingService/internal/service/tenantconfig/models"
)

type ConfigService interface {
	Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
