package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/psqlbuilder"
)

const (
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
	pqForeignKeyViolation = "23503"
)

// Repository репозиторий рабочих расписаний мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var scheduleColumns = []string{
	"id",
	"master_id",
	"weekday",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Create создает расписание на день недели.
// Второе расписание на ту же пару (мастер, день) отклоняется уникальным ограничением
func (r *Repository) Create(ctx context.Context, s *domain.WorkSchedule) (*domain.WorkSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("work_schedules").
		Columns("master_id", "weekday", "start_time", "end_time").
		Values(s.MasterID, s.Weekday, s.StartTime, s.EndTime).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// Update меняет часы существующего расписания
func (r *Repository) Update(ctx context.Context, s *domain.WorkSchedule) (*domain.WorkSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("work_schedules").
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"master_id": s.MasterID, "weekday": s.Weekday}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, mapWriteError("Update", err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// Delete удаляет расписание на день недели (мастер становится выходным)
func (r *Repository) Delete(ctx context.Context, masterID int64, weekday int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("work_schedules").
		Where(squirrel.Eq{"master_id": masterID, "weekday": weekday}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

// HoursFor расписание мастера на день недели, nil если выходной
func (r *Repository) HoursFor(ctx context.Context, masterID int64, weekday int) (*domain.WorkSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("work_schedules").
		Where(squirrel.Eq{"master_id": masterID, "weekday": weekday}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: HoursFor - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: HoursFor - scan schedule: %w", ErrScanRow, err)
	}
	return s, nil
}

// HoursForAny расписания нескольких мастеров на день недели
func (r *Repository) HoursForAny(ctx context.Context, masterIDs []int64, weekday int) ([]*domain.WorkSchedule, error) {
	if len(masterIDs) == 0 {
		return []*domain.WorkSchedule{}, nil
	}

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("work_schedules").
		Where(squirrel.Eq{"master_id": masterIDs, "weekday": weekday}).
		OrderBy("master_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: HoursForAny - build select query: %v", ErrBuildQuery, err)
	}
	return r.query(ctx, "HoursForAny", query, args)
}

// ListByMaster недельное расписание мастера по дням
func (r *Repository) ListByMaster(ctx context.Context, masterID int64) ([]*domain.WorkSchedule, error) {
	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("work_schedules").
		Where(squirrel.Eq{"master_id": masterID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMaster - build select query: %v", ErrBuildQuery, err)
	}
	return r.query(ctx, "ListByMaster", query, args)
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.WorkSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	schedules := make([]*domain.WorkSchedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}
	return schedules, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*domain.WorkSchedule, error) {
	var s domain.WorkSchedule
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&s.ID, &s.MasterID, &s.Weekday, &s.StartTime, &s.EndTime, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

// mapWriteError переводит ошибки ограничений PostgreSQL в ошибки репозитория
func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return ErrDuplicateSchedule
		case pqCheckViolation:
			return ErrInvalidTimeRange
		case pqForeignKeyViolation:
			return ErrMasterNotFound
		}
	}
	return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
}
