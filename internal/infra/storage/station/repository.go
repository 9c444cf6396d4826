package station

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BMS-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со станциями салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория станций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает станцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"type",
		"name",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("stations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var st domain.Station
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&st.ID,
		&st.TenantID,
		&st.Type,
		&st.Name,
		&st.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan station: %v", ErrScanRow, err)
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time

	return &st, nil
}

// GetActiveByTypes получает активные станции салона нужных типов,
// сгруппированные по типу. Один запрос на все типы из запроса поиска
func (r *Repository) GetActiveByTypes(ctx context.Context, tenantID int64, stationTypes []string) (map[string][]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"type",
	).
		From("stations").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"type": stationTypes}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("type ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byType := make(map[string][]int64)
	for rows.Next() {
		var id int64
		var stationType string
		if err := rows.Scan(&id, &stationType); err != nil {
			return nil, fmt.Errorf("%w: GetActiveByTypes - scan row: %v", ErrScanRow, err)
		}
		byType[stationType] = append(byType[stationType], id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTypes - rows error: %v", ErrScanRow, err)
	}

	return byType, nil
}
