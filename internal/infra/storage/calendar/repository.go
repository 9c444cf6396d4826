package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BMS-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// Repository репозиторий для работы с календарем мастеров:
// рабочие окна, еженедельные перерывы и разовые блокировки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingWindows получает еженедельные рабочие окна мастера
func (r *Repository) GetWorkingWindows(ctx context.Context, professionalID int64) ([]domain.WorkingWindow, error) {
	return r.getWorkingWindows(ctx, []int64{professionalID})
}

// GetWorkingWindowsForProfessionals получает рабочие окна набора мастеров одним запросом
func (r *Repository) GetWorkingWindowsForProfessionals(ctx context.Context, professionalIDs []int64) ([]domain.WorkingWindow, error) {
	return r.getWorkingWindows(ctx, professionalIDs)
}

func (r *Repository) getWorkingWindows(ctx context.Context, professionalIDs []int64) ([]domain.WorkingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"day_of_week",
		"to_char(start_time, 'HH24:MI') AS start_time",
		"to_char(end_time, 'HH24:MI') AS end_time",
	).
		From("working_windows").
		Where(squirrel.Eq{"professional_id": professionalIDs}).
		OrderBy("professional_id ASC, day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getWorkingWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getWorkingWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.WorkingWindow, 0)
	for rows.Next() {
		var w domain.WorkingWindow
		var dayOfWeek int
		if err := rows.Scan(&w.ID, &w.ProfessionalID, &dayOfWeek, &w.Start, &w.End); err != nil {
			return nil, fmt.Errorf("%w: getWorkingWindows - scan row: %v", ErrScanRow, err)
		}
		w.DayOfWeek = time.Weekday(dayOfWeek)
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getWorkingWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// GetBreakWindows получает еженедельные перерывы мастера
func (r *Repository) GetBreakWindows(ctx context.Context, professionalID int64) ([]domain.BreakWindow, error) {
	return r.getBreakWindows(ctx, []int64{professionalID})
}

// GetBreakWindowsForProfessionals получает перерывы набора мастеров одним запросом
func (r *Repository) GetBreakWindowsForProfessionals(ctx context.Context, professionalIDs []int64) ([]domain.BreakWindow, error) {
	return r.getBreakWindows(ctx, professionalIDs)
}

func (r *Repository) getBreakWindows(ctx context.Context, professionalIDs []int64) ([]domain.BreakWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"day_of_week",
		"to_char(start_time, 'HH24:MI') AS start_time",
		"to_char(end_time, 'HH24:MI') AS end_time",
	).
		From("break_windows").
		Where(squirrel.Eq{"professional_id": professionalIDs}).
		OrderBy("professional_id ASC, day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBreakWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getBreakWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	breaks := make([]domain.BreakWindow, 0)
	for rows.Next() {
		var b domain.BreakWindow
		var dayOfWeek int
		if err := rows.Scan(&b.ID, &b.ProfessionalID, &dayOfWeek, &b.Start, &b.End); err != nil {
			return nil, fmt.Errorf("%w: getBreakWindows - scan row: %v", ErrScanRow, err)
		}
		b.DayOfWeek = time.Weekday(dayOfWeek)
		breaks = append(breaks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getBreakWindows - rows error: %v", ErrScanRow, err)
	}

	return breaks, nil
}

// GetBlockedPeriods получает разовые блокировки мастера на конкретную дату
func (r *Repository) GetBlockedPeriods(ctx context.Context, professionalID int64, date time.Time) ([]domain.BlockedPeriod, error) {
	return r.getBlockedPeriods(ctx, []int64{professionalID}, date, date)
}

// GetBlockedPeriodsInPeriod получает блокировки набора мастеров за период одним запросом
func (r *Repository) GetBlockedPeriodsInPeriod(ctx context.Context, professionalIDs []int64, startDate, endDate time.Time) ([]domain.BlockedPeriod, error) {
	return r.getBlockedPeriods(ctx, professionalIDs, startDate, endDate)
}

func (r *Repository) getBlockedPeriods(ctx context.Context, professionalIDs []int64, startDate, endDate time.Time) ([]domain.BlockedPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"date",
		"to_char(start_time, 'HH24:MI') AS start_time",
		"to_char(end_time, 'HH24:MI') AS end_time",
		"kind",
	).
		From("blocked_periods").
		Where(squirrel.Eq{"professional_id": professionalIDs}).
		Where(squirrel.GtOrEq{"date": startDate}).
		Where(squirrel.LtOrEq{"date": endDate}).
		OrderBy("professional_id ASC, date ASC, start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBlockedPeriods - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getBlockedPeriods - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]domain.BlockedPeriod, 0)
	for rows.Next() {
		var p domain.BlockedPeriod
		var start, end sql.NullString
		if err := rows.Scan(&p.ID, &p.ProfessionalID, &p.Date, &start, &end, &p.Kind); err != nil {
			return nil, fmt.Errorf("%w: getBlockedPeriods - scan row: %v", ErrScanRow, err)
		}
		// NULL start/end означает блокировку на весь день
		if start.Valid {
			ts := types.TimeString(start.String)
			p.Start = &ts
		}
		if end.Valid {
			ts := types.TimeString(end.String)
			p.End = &ts
		}
		periods = append(periods, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getBlockedPeriods - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}
