package get_tenant_configs

import (
	"context"

	"github.com/m04kA/BMS-SchedulingService/internal/service/tenantconfig/models"
)

type ConfigService interface {
	GetAllByTenant(ctx context.Context, tenantID int64) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
