package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// UseCase use case для получения свободных слотов мастера на дату
type UseCase struct {
	resolver     Resolver
	schedules    ScheduleStore
	slots        SlotGenerator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver Resolver,
	schedules ScheduleStore,
	slots SlotGenerator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:     resolver,
		schedules:    schedules,
		slots:        slots,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Если свободных слотов нет, возвращается пустой список, а не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: master=%d, services=%v, date=%s", req.MasterID, req.ServiceIDs, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услуги
	services, err := uc.resolver.Services(ctx, req.ServiceIDs)
	if err != nil {
		return nil, uc.fail("resolve services", err)
	}

	// 4. Получаем мастера и проверяем квалификацию
	master, err := uc.resolver.Master(ctx, req.MasterID, services)
	if err != nil {
		return nil, uc.fail("resolve master", err)
	}

	// 5. Дата не в прошлом (по часовому поясу салона)
	today := types.DateOf(now.In(uc.slots.Location()))
	if req.Date.Before(today) {
		uc.logger.Warn("GetAvailableSlots: date %s is before today %s", req.Date, today)
		return nil, ErrDateInPast
	}

	// 6. Мастер работает в этот день недели
	schedule, err := uc.schedules.HoursFor(ctx, master.ID, req.Date.ISOWeekday())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule of master=%d: %v", master.ID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if schedule == nil {
		uc.logger.Warn("GetAvailableSlots: master=%d does not work on weekday=%d", master.ID, req.Date.ISOWeekday())
		return nil, ErrMasterDayOff
	}

	// 7. Генерируем слоты
	slots, err := uc.slots.Generate(ctx, master.ID, services, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSlotQuery("master")
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for master=%d, date=%s", len(slots), master.ID, req.Date)

	return &Response{
		MasterID:        master.ID,
		Date:            req.Date,
		DurationMinutes: services.TotalDurationMinutes(),
		IsLongService:   services.AnyLong(),
		Slots:           slots,
	}, nil
}

// fail логирует и пробрасывает ошибки резолвера: отказы как есть, ошибки хранилища как внутренние
func (uc *UseCase) fail(step string, err error) error {
	if errors.Is(err, scheduling.ErrStore) {
		uc.logger.Error("GetAvailableSlots: %s: %v", step, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
	}
	uc.logger.Warn("GetAvailableSlots: %s: %v", step, err)
	return err
}
