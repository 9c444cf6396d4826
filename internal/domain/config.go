package domain

import "time"

// TenantSlotsConfig конфигурация размера блока расписания
// Поддерживает иерархию:
// 1. Конфигурация конкретного мастера (tenant_id, professional_id)
// 2. Конфигурация всего салона (tenant_id, NULL)
type TenantSlotsConfig struct {
	ID               int64
	TenantID         int64
	ProfessionalID   *int64 // NULL = конфигурация для всего салона
	BlockSizeMinutes int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsTenantWide returns true if this is a tenant-wide configuration
func (c *TenantSlotsConfig) IsTenantWide() bool {
	return c.ProfessionalID == nil
}
