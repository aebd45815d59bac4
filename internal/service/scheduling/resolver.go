package scheduling

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/catalog"
)

// Catalog справочник услуг и мастеров
type Catalog interface {
	GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
	GetMasterByID(ctx context.Context, id int64) (*domain.Master, error)
	ListQualifiedMasters(ctx context.Context, serviceIDs []int64) ([]*domain.Master, error)
}

// Resolver превращает id из запроса в услуги и мастеров
type Resolver struct {
	catalog Catalog
}

// NewResolver создает резолвер
func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Services набор услуг по id. Дубликаты схлопываются, отсутствующий id даёт ErrNotFound
func (r *Resolver) Services(ctx context.Context, ids []int64) (domain.ServiceSet, error) {
	unique := domain.UniqueIDs(ids)
	if len(unique) == 0 {
		return nil, fmt.Errorf("%w: service_ids are required", ErrInputFormat)
	}

	found, err := r.catalog.GetServicesByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("%w: get services %v: %w", ErrStore, unique, err)
	}

	byID := make(map[int64]*domain.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}
	set := make(domain.ServiceSet, 0, len(unique))
	for _, id := range unique {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: service id=%d", ErrNotFound, id)
		}
		set = append(set, s)
	}
	return set, nil
}

// Master мастер, который может выполнить все услуги.
// Неактивный мастер или не сотрудник считается ненайденным
func (r *Resolver) Master(ctx context.Context, id int64, services domain.ServiceSet) (*domain.Master, error) {
	m, err := r.catalog.GetMasterByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrMasterNotFound) {
			return nil, fmt.Errorf("%w: master id=%d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: get master id=%d: %w", ErrStore, id, err)
	}
	if !m.IsSchedulable() {
		return nil, fmt.Errorf("%w: master id=%d is not available for booking", ErrNotFound, id)
	}
	if !m.CanPerform(serviceIDs(services)) {
		return nil, fmt.Errorf("%w: master id=%d does not perform services %v", ErrQualification, id, serviceIDs(services))
	}
	return m, nil
}

// QualifiedMasters мастера, умеющие все услуги набора
func (r *Resolver) QualifiedMasters(ctx context.Context, services domain.ServiceSet) ([]*domain.Master, error) {
	masters, err := r.catalog.ListQualifiedMasters(ctx, serviceIDs(services))
	if err != nil {
		return nil, fmt.Errorf("%w: list qualified masters: %w", ErrStore, err)
	}
	return masters, nil
}

func serviceIDs(services domain.ServiceSet) []int64 {
	ids := make([]int64, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}
	return ids
}
