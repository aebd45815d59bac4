package get_masters_with_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// UseCase use case для получения мастеров со свободными слотами на дату
type UseCase struct {
	resolver     Resolver
	aggregator   Aggregator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resolver Resolver, aggregator Aggregator, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		resolver:     resolver,
		aggregator:   aggregator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute для обычных услуг возвращает мастеров хотя бы с одним слотом,
// для длинных услуг всех мастеров, работающих в этот день, без слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMastersWithSlots: services=%v, date=%s", req.ServiceIDs, req.Date)

	if len(req.ServiceIDs) == 0 || req.Date.IsZero() {
		uc.logger.Warn("GetMastersWithSlots: service_ids and date are required")
		return nil, fmt.Errorf("%w: service_ids and date are required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	today := types.DateOf(now.In(uc.aggregator.Location()))
	if req.Date.Before(today) {
		uc.logger.Warn("GetMastersWithSlots: date %s is before today %s", req.Date, today)
		return nil, ErrDateInPast
	}

	services, err := uc.resolver.Services(ctx, req.ServiceIDs)
	if err != nil {
		return nil, uc.fail("resolve services", err)
	}

	masters, err := uc.resolver.QualifiedMasters(ctx, services)
	if err != nil {
		return nil, uc.fail("list masters", err)
	}

	available, err := uc.aggregator.MastersWithSlots(ctx, masters, services, req.Date, now)
	if err != nil {
		return nil, uc.fail("aggregate slots", err)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSlotQuery("masters")
	}

	resp := &Response{
		Date:          req.Date,
		IsLongService: services.AnyLong(),
		Masters:       make([]Master, 0, len(available)),
	}
	for _, ms := range available {
		resp.Masters = append(resp.Masters, Master{
			ID:    ms.Master.ID,
			Name:  ms.Master.FullName(),
			Slots: ms.Slots,
		})
	}

	uc.logger.Info("GetMastersWithSlots: %d of %d qualified masters available on %s",
		len(resp.Masters), len(masters), req.Date)
	return resp, nil
}

func (uc *UseCase) fail(step string, err error) error {
	if errors.Is(err, scheduling.ErrStore) {
		uc.logger.Error("GetMastersWithSlots: %s: %v", step, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
	}
	uc.logger.Warn("GetMastersWithSlots: %s: %v", step, err)
	return err
}
