package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// Service правки графа услуг
type Service struct {
	catalogRepo CatalogRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочника услуг
func NewService(catalogRepo CatalogRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// SetParents заменяет родителей услуги. Правка, которая замкнула бы цикл, отклоняется с ErrCycle.
// Граф блокируется на время транзакции, поэтому две встречные правки не создадут цикл вместе
func (s *Service) SetParents(ctx context.Context, serviceID int64, parentIDs []int64) ([]int64, error) {
	parents := domain.UniqueIDs(parentIDs)
	s.logger.Info("SetParents: service=%d parents=%v", serviceID, parents)

	if serviceID <= 0 {
		return nil, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.catalogRepo.LockServiceGraph(ctx); err != nil {
			return fmt.Errorf("%w: lock graph: %v", ErrInternal, err)
		}

		if err := s.checkExist(ctx, serviceID, parents); err != nil {
			return err
		}

		graph, err := s.catalogRepo.LoadServiceGraph(ctx)
		if err != nil {
			return fmt.Errorf("%w: load graph: %v", ErrInternal, err)
		}
		if err := graph.SetParents(serviceID, parents); err != nil {
			if errors.Is(err, domain.ErrCycle) {
				return ErrCycle
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if err := s.catalogRepo.ReplaceParents(ctx, serviceID, parents); err != nil {
			return fmt.Errorf("%w: replace parents: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCycle):
			s.logger.Warn("SetParents: service=%d parents=%v would create a cycle", serviceID, parents)
		case errors.Is(err, ErrServiceNotFound):
			s.logger.Warn("SetParents: %v", err)
		default:
			s.logger.Error("SetParents: service=%d: %v", serviceID, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: SetParents - transaction error: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	s.logger.Info("SetParents: service=%d now has %d parents", serviceID, len(parents))
	return parents, nil
}

func (s *Service) checkExist(ctx context.Context, serviceID int64, parents []int64) error {
	ids := domain.UniqueIDs(append([]int64{serviceID}, parents...))
	found, err := s.catalogRepo.GetServicesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("%w: get services: %v", ErrInternal, err)
	}
	if len(found) == len(ids) {
		return nil
	}

	known := make(map[int64]struct{}, len(found))
	for _, svc := range found {
		known[svc.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
	}
	return nil
}
