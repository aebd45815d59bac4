package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// MasterSlots мастер и его свободные слоты на день
type MasterSlots struct {
	Master *domain.Master
	Slots  []types.TimeString
}

// Aggregator доступность по нескольким мастерам
type Aggregator struct {
	schedules ScheduleStore
	slots     *SlotGenerator
}

// NewAggregator создает агрегатор
func NewAggregator(schedules ScheduleStore, slots *SlotGenerator) *Aggregator {
	return &Aggregator{schedules: schedules, slots: slots}
}

// Location часовой пояс салона
func (a *Aggregator) Location() *time.Location {
	return a.slots.Location()
}

// eligible оставляет активных мастеров-сотрудников, умеющих все услуги
func eligible(masters []*domain.Master, services domain.ServiceSet) []*domain.Master {
	ids := serviceIDs(services)
	out := make([]*domain.Master, 0, len(masters))
	for _, m := range masters {
		if m.IsSchedulable() && m.CanPerform(ids) {
			out = append(out, m)
		}
	}
	return out
}

func masterIDs(masters []*domain.Master) []int64 {
	ids := make([]int64, 0, len(masters))
	for _, m := range masters {
		ids = append(ids, m.ID)
	}
	return ids
}

func byMaster(schedules []*domain.WorkSchedule) map[int64]*domain.WorkSchedule {
	out := make(map[int64]*domain.WorkSchedule, len(schedules))
	for _, s := range schedules {
		out[s.MasterID] = s
	}
	return out
}

// MastersWithSlots мастера со свободными слотами на дату.
// Для длинных услуг возвращаются все работающие в этот день мастера с пустым списком слотов
func (a *Aggregator) MastersWithSlots(ctx context.Context, masters []*domain.Master, services domain.ServiceSet, date types.Date, now time.Time) ([]MasterSlots, error) {
	candidates := eligible(masters, services)
	result := make([]MasterSlots, 0, len(candidates))
	if len(candidates) == 0 {
		return result, nil
	}

	schedules, err := a.schedules.HoursForAny(ctx, masterIDs(candidates), date.ISOWeekday())
	if err != nil {
		return nil, fmt.Errorf("%w: get schedules for weekday=%d: %w", ErrStore, date.ISOWeekday(), err)
	}
	working := byMaster(schedules)
	long := services.AnyLong()

	for _, m := range candidates {
		schedule, ok := working[m.ID]
		if !ok {
			continue
		}
		if long {
			result = append(result, MasterSlots{Master: m, Slots: []types.TimeString{}})
			continue
		}

		slots, err := a.slots.generateFor(ctx, m.ID, schedule, services, date, now)
		if err != nil {
			return nil, err
		}
		if len(slots) > 0 {
			result = append(result, MasterSlots{Master: m, Slots: slots})
		}
	}
	return result, nil
}

// AvailableDates дни месяца (не раньше сегодняшнего), в которые хотя бы один мастер свободен.
// Перебор мастеров на дне останавливается на первом свободном
func (a *Aggregator) AvailableDates(ctx context.Context, masters []*domain.Master, services domain.ServiceSet, year int, month time.Month, now time.Time) ([]types.Date, error) {
	dates := make([]types.Date, 0)
	candidates := eligible(masters, services)
	if len(candidates) == 0 {
		return dates, nil
	}

	today := types.DateOf(now.In(a.slots.Location()))
	first := types.NewDate(year, month, 1)
	if first.Before(today) {
		first = today
	}
	long := services.AnyLong()
	ids := masterIDs(candidates)

	// расписание зависит только от дня недели
	weekly := make(map[int][]*domain.WorkSchedule, 7)

	for day := first; day.Month == month && day.Year == year; day = day.AddDays(1) {
		weekday := day.ISOWeekday()
		schedules, ok := weekly[weekday]
		if !ok {
			var err error
			schedules, err = a.schedules.HoursForAny(ctx, ids, weekday)
			if err != nil {
				return nil, fmt.Errorf("%w: get schedules for weekday=%d: %w", ErrStore, weekday, err)
			}
			weekly[weekday] = schedules
		}
		if _, _, anyone := domain.UnionWindow(schedules); !anyone {
			continue
		}
		if long {
			dates = append(dates, day)
			continue
		}

		for _, schedule := range schedules {
			slots, err := a.slots.generateFor(ctx, schedule.MasterID, schedule, services, day, now)
			if err != nil {
				return nil, err
			}
			if len(slots) > 0 {
				dates = append(dates, day)
				break
			}
		}
	}
	return dates, nil
}
