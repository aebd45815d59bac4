package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// SlotInput всё, что нужно для расчёта слотов одного мастера на один день
type SlotInput struct {
	Schedule      *domain.WorkSchedule // nil = выходной
	Date          types.Date
	TotalDuration time.Duration
	Existing      []*domain.Appointment
	Now           time.Time
	Location      *time.Location
	Config        domain.SchedulingConfig
}

// GenerateSlots перебирает начала от начала рабочего дня с шагом SlotGranularity,
// пока запись помещается до конца дня. Отбрасывает слоты не позже now+BookingNotice
// и слоты, пересекающиеся с занятостью мастера. Результат по возрастанию
func GenerateSlots(in SlotInput) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if in.Schedule == nil || in.TotalDuration <= 0 || in.Config.SlotGranularity <= 0 {
		return slots
	}

	window := in.Schedule.Window(in.Date, in.Location)
	cutoff := in.Now.Add(in.Config.BookingNotice)

	for candidate := window.Start; !candidate.Add(in.TotalDuration).After(window.End); candidate = candidate.Add(in.Config.SlotGranularity) {
		if !candidate.After(cutoff) {
			continue
		}
		if FindConflict(in.Existing, domain.NewInterval(candidate, in.TotalDuration), in.Config, nil) != nil {
			continue
		}
		slots = append(slots, types.NewTimeString(candidate))
	}
	return slots
}

// SlotGenerator считает свободные слоты мастера, читая расписание и записи из хранилищ
type SlotGenerator struct {
	schedules    ScheduleStore
	appointments AppointmentReader
	cfg          domain.SchedulingConfig
	loc          *time.Location
}

// NewSlotGenerator создает генератор слотов
func NewSlotGenerator(schedules ScheduleStore, appointments AppointmentReader, cfg domain.SchedulingConfig, loc *time.Location) *SlotGenerator {
	return &SlotGenerator{schedules: schedules, appointments: appointments, cfg: cfg, loc: loc}
}

// Generate слоты мастера на дату. Для длинных услуг слотов нет (пустой список)
func (g *SlotGenerator) Generate(ctx context.Context, masterID int64, services domain.ServiceSet, date types.Date, now time.Time) ([]types.TimeString, error) {
	if services.AnyLong() {
		return []types.TimeString{}, nil
	}

	schedule, err := g.schedules.HoursFor(ctx, masterID, date.ISOWeekday())
	if err != nil {
		return nil, fmt.Errorf("%w: get schedule of master=%d: %w", ErrStore, masterID, err)
	}
	return g.generateFor(ctx, masterID, schedule, services, date, now)
}

func (g *SlotGenerator) generateFor(ctx context.Context, masterID int64, schedule *domain.WorkSchedule, services domain.ServiceSet, date types.Date, now time.Time) ([]types.TimeString, error) {
	if schedule == nil {
		return []types.TimeString{}, nil
	}

	existing, err := g.appointments.GetByMasterAndDate(ctx, masterID, date, g.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: get appointments of master=%d on %s: %w", ErrStore, masterID, date, err)
	}

	return GenerateSlots(SlotInput{
		Schedule:      schedule,
		Date:          date,
		TotalDuration: time.Duration(services.TotalDurationMinutes()) * time.Minute,
		Existing:      existing,
		Now:           now,
		Location:      g.loc,
		Config:        g.cfg,
	}), nil
}

// Location часовой пояс салона
func (g *SlotGenerator) Location() *time.Location {
	return g.loc
}
