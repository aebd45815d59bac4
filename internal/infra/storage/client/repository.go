package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/psqlbuilder"
)

// Repository репозиторий клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOrCreateByPhone возвращает клиента с этим телефоном, создавая его при отсутствии.
// Имя существующего клиента не перезаписывается
func (r *Repository) GetOrCreateByPhone(ctx context.Context, name, phone string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("name", "phone").
		Values(name, phone).
		Suffix("ON CONFLICT (phone) DO UPDATE SET phone = EXCLUDED.phone RETURNING id, name, phone, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateByPhone - build upsert query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Phone, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateByPhone - execute upsert: %w", ErrExecQuery, err)
	}
	c.CreatedAt = createdAt.Time
	return &c, nil
}
