package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
)

// UseCase use case для получения дней месяца, на которые есть свободное время
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

// Execute выполняет use case. Прошедший месяц даёт пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: services=%v, year=%d, month=%d", req.ServiceIDs, req.Year, req.Month)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	services, err := uc.resolver.Services(ctx, req.ServiceIDs)
	if err != nil {
		return nil, uc.fail("resolve services", err)
	}

	masters, err := uc.resolver.QualifiedMasters(ctx, services)
	if err != nil {
		return nil, uc.fail("list masters", err)
	}

	dates, err := uc.aggregator.AvailableDates(ctx, masters, services, req.Year, req.Month, now)
	if err != nil {
		return nil, uc.fail("aggregate dates", err)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSlotQuery("dates")
	}

	uc.logger.Info("GetAvailableDates: %d available dates in %d-%02d", len(dates), req.Year, req.Month)
	return &Response{
		Year:           req.Year,
		Month:          req.Month,
		IsLongService:  services.AnyLong(),
		AvailableDates: dates,
	}, nil
}

func validateRequest(req *Request) error {
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: service_ids are required", ErrInvalidInput)
	}
	if req.Year < 2000 || req.Year > 9999 {
		return fmt.Errorf("%w: year is out of range", ErrInvalidInput)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be 1..12", ErrInvalidInput)
	}
	return nil
}

func (uc *UseCase) fail(step string, err error) error {
	if errors.Is(err, scheduling.ErrStore) {
		uc.logger.Error("GetAvailableDates: %s: %v", step, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
	}
	uc.logger.Warn("GetAvailableDates: %s: %v", step, err)
	return err
}
