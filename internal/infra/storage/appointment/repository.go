package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Repository репозиторий записей клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// колонки записи + длительность и состав услуг, агрегированные по appointment_services
var appointmentColumns = []string{
	"a.id",
	"a.client_id",
	"a.client_name",
	"a.phone",
	"a.master_id",
	"a.date_time",
	"a.date",
	"a.confirmation",
	"a.payment_url",
	"a.reminder_minutes",
	"a.prepayment",
	"a.created_at",
	"a.updated_at",
	"COALESCE(SUM(s.duration_minutes), 0) AS duration_minutes",
	"COUNT(s.id) AS services_count",
	"COALESCE(ARRAY_AGG(s.id ORDER BY s.id) FILTER (WHERE s.id IS NOT NULL), '{}') AS service_ids",
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		LeftJoin("appointment_services aps ON aps.appointment_id = a.id").
		LeftJoin("services s ON s.id = aps.service_id").
		GroupBy("a.id")
}

// Create сохраняет запись и её услуги.
// Вызывается внутри транзакции вместе с проверкой расписания
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	confirmation := a.Confirmation
	if confirmation == "" {
		confirmation = domain.ConfirmationPending
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"client_name",
			"phone",
			"master_id",
			"date_time",
			"date",
			"confirmation",
			"reminder_minutes",
			"prepayment",
		).
		Values(
			a.ClientID,
			a.ClientName,
			a.Phone,
			a.MasterID,
			a.DateTime,
			a.Date,
			confirmation,
			a.ReminderMinutes,
			a.Prepayment,
		).
		Suffix("RETURNING id, confirmation, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.Confirmation,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	serviceIDs := domain.UniqueIDs(a.ServiceIDs)
	if len(serviceIDs) > 0 {
		insert := psqlbuilder.Insert("appointment_services").Columns("appointment_id", "service_id")
		for _, id := range serviceIDs {
			insert = insert.Values(a.ID, id)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build services insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert services: %w", ErrExecQuery, err)
		}
	}
	a.ServiceIDs = serviceIDs
	a.ServicesCount = len(serviceIDs)

	return a, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}
	return a, nil
}

// GetByMasterAndDate записи мастера за календарный день в часовом поясе loc:
// со временем внутри [00:00, 24:00) и записи длинных услуг с этой датой.
// Статус подтверждения не учитывается
func (r *Repository) GetByMasterAndDate(ctx context.Context, masterID int64, date types.Date, loc *time.Location) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := date.Start(loc)
	dayEnd := date.AddDays(1).Start(loc)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.master_id": masterID}).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.GtOrEq{"a.date_time": dayStart},
				squirrel.Lt{"a.date_time": dayEnd},
			},
			squirrel.And{
				squirrel.Eq{"a.date_time": nil},
				squirrel.Eq{"a.date": date},
			},
		}).
		OrderBy("a.date_time ASC NULLS FIRST", "a.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMasterAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMasterAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByPeriod записи за дни [From, To) в часовом поясе loc, по времени, записи без времени первыми
func (r *Repository) ListByPeriod(ctx context.Context, filter domain.PeriodFilter, loc *time.Location) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectAppointments().
		Where(squirrel.Or{
			squirrel.And{
				squirrel.GtOrEq{"a.date_time": filter.From.Start(loc)},
				squirrel.Lt{"a.date_time": filter.To.Start(loc)},
			},
			squirrel.And{
				squirrel.Eq{"a.date_time": nil},
				squirrel.GtOrEq{"a.date": filter.From},
				squirrel.Lt{"a.date": filter.To},
			},
		})
	if filter.MasterID != nil {
		builder = builder.Where(squirrel.Eq{"a.master_id": *filter.MasterID})
	}
	if filter.ServiceID != nil {
		builder = builder.Where("EXISTS (SELECT 1 FROM appointment_services f WHERE f.appointment_id = a.id AND f.service_id = ?)", *filter.ServiceID)
	}

	query, args, err := builder.
		OrderBy("a.date_time ASC NULLS FIRST", "a.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPeriod - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListPending неподтверждённые записи, старые первыми
func (r *Repository) ListPending(ctx context.Context, filter domain.PendingFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.confirmation": domain.ConfirmationPending}).
		OrderBy("a.created_at ASC", "a.id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// CountPending количество неподтверждённых записей
func (r *Repository) CountPending(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"confirmation": domain.ConfirmationPending}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountPending - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountPending - scan: %w", ErrScanRow, err)
	}
	return total, nil
}

// UpdateConfirmation переводит ожидающие записи из ids в статус to.
// Уже подтверждённые или отклонённые записи не меняются. Возвращает число изменённых строк
func (r *Repository) UpdateConfirmation(ctx context.Context, ids []int64, to domain.Confirmation) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("confirmation", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"confirmation": domain.ConfirmationPending}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateConfirmation - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateConfirmation - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateConfirmation - get rows affected: %w", ErrExecQuery, err)
	}
	return affected, nil
}

// SetPaymentURL сохраняет ссылку на оплату
func (r *Repository) SetPaymentURL(ctx context.Context, id int64, url string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("payment_url", url).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetPaymentURL - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPaymentURL - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetPaymentURL - get rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// LockMasterDay берёт транзакционную advisory-блокировку на пару (мастер, дата).
// Должна быть первым запросом транзакции READ COMMITTED: тогда каждое следующее
// чтение видит записи, закоммиченные предыдущим владельцем блокировки.
// Блокировка снимается при commit/rollback
func (r *Repository) LockMasterDay(ctx context.Context, masterID int64, date types.Date) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := fmt.Sprintf("appointments:%d:%s", masterID, date)
	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", key); err != nil {
		return fmt.Errorf("%w: LockMasterDay - lock master=%d date=%s: %w", ErrExecQuery, masterID, date, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a          domain.Appointment
		clientID   sql.NullInt64
		dateTime   sql.NullTime
		date       types.Date
		paymentURL sql.NullString
		serviceIDs pq.Int64Array
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&clientID,
		&a.ClientName,
		&a.Phone,
		&a.MasterID,
		&dateTime,
		&date,
		&a.Confirmation,
		&paymentURL,
		&a.ReminderMinutes,
		&a.Prepayment,
		&createdAt,
		&updatedAt,
		&a.DurationMinutes,
		&a.ServicesCount,
		&serviceIDs,
	)
	if err != nil {
		return nil, err
	}

	if clientID.Valid {
		a.ClientID = &clientID.Int64
	}
	if dateTime.Valid {
		a.DateTime = &dateTime.Time
	}
	if !date.IsZero() {
		a.Date = &date
	}
	if paymentURL.Valid {
		a.PaymentURL = &paymentURL.String
	}
	a.ServiceIDs = []int64(serviceIDs)
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}
