package catalog

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

// Repository справочники: услуги, мастера и граф услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var serviceColumns = []string{
	"s.id",
	"s.name",
	"s.duration_minutes",
	"s.price",
	"s.is_long",
	"COALESCE(ARRAY_AGG(sp.parent_id ORDER BY sp.parent_id) FILTER (WHERE sp.parent_id IS NOT NULL), '{}') AS parent_ids",
}

var masterColumns = []string{
	"m.id",
	"m.first_name",
	"m.last_name",
	"m.is_active",
	"m.is_employee",
	"COALESCE(ARRAY_AGG(ms.service_id ORDER BY ms.service_id) FILTER (WHERE ms.service_id IS NOT NULL), '{}') AS service_ids",
}

// GetServicesByIDs услуги по списку id в порядке возрастания id.
// Отсутствующие id просто не попадают в результат
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services s").
		LeftJoin("service_parents sp ON sp.service_id = s.id").
		Where(squirrel.Eq{"s.id": ids}).
		GroupBy("s.id").
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0, len(ids))
	for rows.Next() {
		var s domain.Service
		var parents pq.Int64Array
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price, &s.IsLong, &parents); err != nil {
			return nil, fmt.Errorf("%w: GetServicesByIDs - scan row: %w", ErrScanRow, err)
		}
		s.ParentIDs = []int64(parents)
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - rows error: %w", ErrScanRow, err)
	}
	return services, nil
}

// GetMasterByID мастер с набором услуг
func (r *Repository) GetMasterByID(ctx context.Context, id int64) (*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(masterColumns...).
		From("masters m").
		LeftJoin("master_services ms ON ms.master_id = m.id").
		Where(squirrel.Eq{"m.id": id}).
		GroupBy("m.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetMasterByID - build select query: %v", ErrBuildQuery, err)
	}

	m, err := scanMaster(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMasterByID - scan master: %w", ErrScanRow, err)
	}
	return m, nil
}

// ListQualifiedMasters активные мастера-сотрудники, которые умеют все услуги из serviceIDs
func (r *Repository) ListQualifiedMasters(ctx context.Context, serviceIDs []int64) ([]*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	ids := domain.UniqueIDs(serviceIDs)

	query, args, err := psqlbuilder.Select(masterColumns...).
		From("masters m").
		Join("master_services ms ON ms.master_id = m.id").
		Where(squirrel.Eq{"m.is_active": true, "m.is_employee": true}).
		GroupBy("m.id").
		Having("COUNT(*) FILTER (WHERE ms.service_id = ANY(?)) = ?", pq.Array(ids), len(ids)).
		OrderBy("m.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListQualifiedMasters - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListQualifiedMasters - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	masters := make([]*domain.Master, 0)
	for rows.Next() {
		m, err := scanMaster(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListQualifiedMasters - scan row: %w", ErrScanRow, err)
		}
		masters = append(masters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListQualifiedMasters - rows error: %w", ErrScanRow, err)
	}
	return masters, nil
}

// LoadServiceGraph все рёбра service -> parent
func (r *Repository) LoadServiceGraph(ctx context.Context) (*domain.ServiceGraph, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("service_id", "parent_id").
		From("service_parents").
		OrderBy("service_id ASC", "parent_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadServiceGraph - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadServiceGraph - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	edges := make(map[int64][]int64)
	for rows.Next() {
		var child, parent int64
		if err := rows.Scan(&child, &parent); err != nil {
			return nil, fmt.Errorf("%w: LoadServiceGraph - scan row: %w", ErrScanRow, err)
		}
		edges[child] = append(edges[child], parent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadServiceGraph - rows error: %w", ErrScanRow, err)
	}
	return domain.NewServiceGraph(edges), nil
}

// LockServiceGraph сериализует правки графа услуг до конца транзакции
func (r *Repository) LockServiceGraph(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, "LOCK TABLE service_parents IN SHARE ROW EXCLUSIVE MODE"); err != nil {
		return fmt.Errorf("%w: LockServiceGraph - lock table: %w", ErrExecQuery, err)
	}
	return nil
}

// ReplaceParents заменяет родителей услуги. Должен вызываться в транзакции
func (r *Repository) ReplaceParents(ctx context.Context, serviceID int64, parentIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("service_parents").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceParents - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceParents - delete parents: %w", ErrExecQuery, err)
	}

	if len(parentIDs) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("service_parents").Columns("service_id", "parent_id")
	for _, p := range domain.UniqueIDs(parentIDs) {
		insert = insert.Values(serviceID, p)
	}
	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceParents - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceParents - insert parents: %w", ErrExecQuery, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMaster(row rowScanner) (*domain.Master, error) {
	var m domain.Master
	var services pq.Int64Array
	if err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.IsActive, &m.IsEmployee, &services); err != nil {
		return nil, err
	}
	m.ServiceIDs = []int64(services)
	return &m, nil
}
