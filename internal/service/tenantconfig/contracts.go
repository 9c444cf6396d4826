package tenantconfig

import (
	"context"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации размера блока
type ConfigRepository interface {
	GetByTenantAndProfessional(ctx context.Context, tenantID int64, professionalID *int64) (*domain.TenantSlotsConfig, error)
	GetConfigWithHierarchy(ctx context.Context, tenantID int64, professionalID *int64) (*domain.TenantSlotsConfig, error)
	GetAllByTenant(ctx context.Context, tenantID int64) ([]*domain.TenantSlotsConfig, error)
	Upsert(ctx context.Context, config *domain.TenantSlotsConfig) (*domain.TenantSlotsConfig, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
