package catalog

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория услуг
type CatalogRepository interface {
	GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
	LoadServiceGraph(ctx context.Context) (*domain.ServiceGraph, error)
	LockServiceGraph(ctx context.Context) error
	ReplaceParents(ctx context.Context, serviceID int64, parentIDs []int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
