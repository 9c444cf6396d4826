package tenantconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BMS-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с конфигурацией размера блока расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую конфигурацию размера блока
func (r *Repository) Create(ctx context.Context, config *domain.TenantSlotsConfig) (*domain.TenantSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tenant_slots_config").
		Columns(
			"tenant_id",
			"professional_id",
			"block_size_minutes",
		).
		Values(
			config.TenantID,
			config.ProfessionalID,
			config.BlockSizeMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// GetByTenantAndProfessional получает конфигурацию для салона и мастера
// professionalID == nil означает конфигурацию всего салона
func (r *Repository) GetByTenantAndProfessional(ctx context.Context, tenantID int64, professionalID *int64) (*domain.TenantSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"tenant_id",
		"professional_id",
		"block_size_minutes",
		"created_at",
		"updated_at",
	).
		From("tenant_slots_config").
		Where(squirrel.Eq{"tenant_id": tenantID})

	// Фильтрация по professional_id (NULL или конкретное значение)
	if professionalID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": *professionalID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndProfessional - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.TenantSlotsConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.TenantID,
		&config.ProfessionalID,
		&config.BlockSizeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndProfessional - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов
// Приоритет применения конфигурации:
// 1. Конфигурация конкретного мастера (tenantID, professionalID)
// 2. Конфигурация всего салона (tenantID, NULL)
//
// Если конфигурация не найдена ни на одном уровне, возвращает ErrConfigNotFound;
// вызывающая сторона подставляет размер блока по умолчанию
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, tenantID int64, professionalID *int64) (*domain.TenantSlotsConfig, error) {
	// 1. Пробуем получить конфигурацию конкретного мастера (если указан)
	if professionalID != nil {
		config, err := r.GetByTenantAndProfessional(ctx, tenantID, professionalID)
		if err == nil {
			return config, nil
		}
		if err != ErrConfigNotFound {
			return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 1 (professional): %v", ErrExecQuery, err)
		}
	}

	// 2. Пробуем получить конфигурацию всего салона
	config, err := r.GetByTenantAndProfessional(ctx, tenantID, nil)
	if err == nil {
		return config, nil
	}
	if err != ErrConfigNotFound {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 2 (tenant-wide): %v", ErrExecQuery, err)
	}

	return nil, ErrConfigNotFound
}

// GetAllByTenant получает все конфигурации салона (общую и для мастеров)
func (r *Repository) GetAllByTenant(ctx context.Context, tenantID int64) ([]*domain.TenantSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"professional_id",
		"block_size_minutes",
		"created_at",
		"updated_at",
	).
		From("tenant_slots_config").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("professional_id ASC NULLS FIRST"). // Общая конфигурация салона первой
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.TenantSlotsConfig, 0)

	for rows.Next() {
		var config domain.TenantSlotsConfig
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&config.ID,
			&config.TenantID,
			&config.ProfessionalID,
			&config.BlockSizeMinutes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByTenant - scan row: %v", ErrScanRow, err)
		}

		config.CreatedAt = createdAt.Time
		config.UpdatedAt = updatedAt.Time

		configs = append(configs, &config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByTenant - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// Upsert создает или обновляет конфигурацию для пары (tenant_id, professional_id)
func (r *Repository) Upsert(ctx context.Context, config *domain.TenantSlotsConfig) (*domain.TenantSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tenant_slots_config").
		Columns(
			"tenant_id",
			"professional_id",
			"block_size_minutes",
		).
		Values(
			config.TenantID,
			config.ProfessionalID,
			config.BlockSizeMinutes,
		).
		Suffix(`ON CONFLICT (tenant_id, COALESCE(professional_id, 0))
			DO UPDATE SET block_size_minutes = EXCLUDED.block_size_minutes, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Delete удаляет конфигурацию
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tenant_slots_config").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
