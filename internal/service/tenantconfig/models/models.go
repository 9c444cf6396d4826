package models

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// Request модели

// UpsertConfigRequest запрос на создание или обновление конфигурации
// ProfessionalID = nil задает конфигурацию для всего салона
type UpsertConfigRequest struct {
	TenantID         int64  `json:"tenantId"`
	ProfessionalID   *int64 `json:"professionalId,omitempty"`
	BlockSizeMinutes int    `json:"blockSizeMinutes"`
}

// GetConfigRequest запрос на получение конфигурации с учетом иерархии
type GetConfigRequest struct {
	TenantID       int64  `json:"tenantId"`
	ProfessionalID *int64 `json:"professionalId,omitempty"`
}

// Response модели

// ConfigResponse ответ с данными конфигурации
type ConfigResponse struct {
	ID               int64     `json:"id"`
	TenantID         int64     `json:"tenantId"`
	ProfessionalID   *int64    `json:"professionalId,omitempty"`
	BlockSizeMinutes int       `json:"blockSizeMinutes"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ConfigListResponse ответ со списком конфигураций
type ConfigListResponse struct {
	Configs []ConfigResponse `json:"configs"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.TenantSlotsConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		ID:               c.ID,
		TenantID:         c.TenantID,
		ProfessionalID:   c.ProfessionalID,
		BlockSizeMinutes: c.BlockSizeMinutes,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// FromDomainConfigList конвертирует список domain моделей в DTO
func FromDomainConfigList(configs []*domain.TenantSlotsConfig) *ConfigListResponse {
	if configs == nil {
		return &ConfigListResponse{
			Configs: []ConfigResponse{},
		}
	}

	resp := &ConfigListResponse{
		Configs: make([]ConfigResponse, len(configs)),
	}

	for i, config := range configs {
		if configResp := FromDomainConfig(config); configResp != nil {
			resp.Configs[i] = *configResp
		}
	}

	return resp
}

// ToDomainConfig конвертирует UpsertConfigRequest в domain модель
func (r *UpsertConfigRequest) ToDomainConfig() *domain.TenantSlotsConfig {
	return &domain.TenantSlotsConfig{
		TenantID:         r.TenantID,
		ProfessionalID:   r.ProfessionalID,
		BlockSizeMinutes: r.BlockSizeMinutes,
	}
}
