package update_tenant_config

import (
	"github.com/m04kA/BMS-SchedulingService/internal/service/tenantconfig/models"
)

// UpdateTenantConfigRequest HTTP request model
// ProfessionalID = null задает конфигурацию для всего салона
type UpdateTenantConfigRequest struct {
	ProfessionalID   *int64 `json:"professionalId,omitempty"`
	BlockSizeMinutes int    `json:"blockSizeMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTenantConfigRequest) ToServiceRequest(tenantID int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		TenantID:         tenantID,
		ProfessionalID:   r.ProfessionalID,
		BlockSizeMinutes: r.BlockSizeMinutes,
	}
}
