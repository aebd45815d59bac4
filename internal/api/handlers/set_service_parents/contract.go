package set_service_parents

import "context"

type CatalogService interface {
	SetParents(ctx context.Context, serviceID int64, parentIDs []int64) ([]int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
