package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Draft черновик записи для проверки
type Draft struct {
	ExcludeID *int64 // id самой записи при повторной проверке
	MasterID  int64
	Services  domain.ServiceSet
	DateTime  *time.Time
	Date      *types.Date
}

// rule одно правило проверки. done=true завершает цепочку успехом
type rule struct {
	name  string
	check func(ctx context.Context, d *Draft, now time.Time) (done bool, err error)
}

// Validator проверяет черновик записи упорядоченной цепочкой правил, первое нарушение побеждает
type Validator struct {
	schedules ScheduleStore
	detector  *Detector
	loc       *time.Location
}

// NewValidator создает валидатор записей
func NewValidator(schedules ScheduleStore, detector *Detector, loc *time.Location) *Validator {
	return &Validator{schedules: schedules, detector: detector, loc: loc}
}

// Validate возвращает nil или *ValidationError (ошибки хранилища оборачиваются в ErrStore).
// Для длинных услуг с одним только date_time заполняет d.Date
func (v *Validator) Validate(ctx context.Context, d *Draft, now time.Time) error {
	run := &validation{v: v}
	for _, r := range run.chain() {
		done, err := r.check(ctx, d, now)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return nil
}

// validation состояние одного прогона цепочки
type validation struct {
	v *Validator

	// заполняется правилом working_day
	schedule *domain.WorkSchedule
}

func (r *validation) chain() []rule {
	return []rule{
		{RuleRequiredFields, r.requiredFields},
		{RuleLongService, r.longService},
		{RuleNotInPast, r.notInPast},
		{RuleWorkingDay, r.workingDay},
		{RuleWithinHours, r.withinHours},
		{RuleFitsHours, r.fitsHours},
		{RuleNoOverlap, r.noOverlap},
	}
}

func (r *validation) requiredFields(_ context.Context, d *Draft, _ time.Time) (bool, error) {
	if len(d.Services) == 0 {
		return false, reject(RuleRequiredFields, ErrInputFormat, "не выбрано ни одной услуги")
	}
	if d.MasterID <= 0 {
		return false, reject(RuleRequiredFields, ErrInputFormat, "не указан мастер")
	}
	return false, nil
}

func (r *validation) longService(ctx context.Context, d *Draft, now time.Time) (bool, error) {
	if !d.Services.AnyLong() {
		return false, nil
	}

	if d.Date == nil {
		if d.DateTime == nil {
			return false, reject(RuleLongService, ErrInputFormat, "для длительной услуги нужна дата")
		}
		derived := types.DateOf(d.DateTime.In(r.v.loc))
		d.Date = &derived
	}

	today := types.DateOf(now.In(r.v.loc))
	if d.Date.Before(today) {
		return false, reject(RuleLongService, ErrScheduleConflict, "дата %s уже прошла", d.Date)
	}

	schedule, err := r.v.schedules.HoursFor(ctx, d.MasterID, d.Date.ISOWeekday())
	if err != nil {
		return false, fmt.Errorf("%w: get schedule of master=%d: %w", ErrStore, d.MasterID, err)
	}
	if schedule == nil {
		return false, reject(RuleLongService, ErrScheduleConflict, "мастер не работает %s", d.Date)
	}
	return true, nil
}

func (r *validation) notInPast(_ context.Context, d *Draft, now time.Time) (bool, error) {
	if d.DateTime == nil {
		return false, reject(RuleRequiredFields, ErrInputFormat, "не указаны дата и время записи")
	}
	if d.DateTime.Before(now) {
		return false, reject(RuleNotInPast, ErrScheduleConflict, "нельзя записаться на прошедшее время")
	}
	return false, nil
}

func (r *validation) workingDay(ctx context.Context, d *Draft, _ time.Time) (bool, error) {
	local := d.DateTime.In(r.v.loc)
	schedule, err := r.v.schedules.HoursFor(ctx, d.MasterID, types.ISOWeekday(local))
	if err != nil {
		return false, fmt.Errorf("%w: get schedule of master=%d: %w", ErrStore, d.MasterID, err)
	}
	if schedule == nil {
		return false, reject(RuleWorkingDay, ErrScheduleConflict, "мастер не работает в этот день недели (%s)", local.Weekday())
	}
	r.schedule = schedule
	return false, nil
}

func (r *validation) withinHours(_ context.Context, d *Draft, _ time.Time) (bool, error) {
	local := d.DateTime.In(r.v.loc)
	timeOfDay := types.NewTimeString(local)
	if timeOfDay.IsBefore(r.schedule.StartTime) || timeOfDay.IsAfter(r.schedule.EndTime) {
		return false, reject(RuleWithinHours, ErrScheduleConflict,
			"время записи %s вне рабочего графика мастера (%s - %s)", timeOfDay, r.schedule.StartTime, r.schedule.EndTime)
	}
	return false, nil
}

func (r *validation) fitsHours(_ context.Context, d *Draft, _ time.Time) (bool, error) {
	local := d.DateTime.In(r.v.loc)
	end := local.Add(time.Duration(d.Services.TotalDurationMinutes()) * time.Minute)
	dayEnd := r.schedule.EndTime.On(types.DateOf(local), r.v.loc)
	if end.After(dayEnd) {
		return false, reject(RuleFitsHours, ErrScheduleConflict,
			"услуги (длительность %d мин) не вместятся в рабочее время мастера до %s",
			d.Services.TotalDurationMinutes(), r.schedule.EndTime)
	}
	return false, nil
}

func (r *validation) noOverlap(ctx context.Context, d *Draft, _ time.Time) (bool, error) {
	duration := time.Duration(d.Services.TotalDurationMinutes()) * time.Minute
	conflict, err := r.v.detector.Find(ctx, d.MasterID, *d.DateTime, duration, d.ExcludeID)
	if err != nil {
		return false, err
	}
	if conflict != nil {
		return false, reject(RuleNoOverlap, ErrScheduleConflict,
			"время пересекается с записью #%d в %s", conflict.ID, types.NewTimeString(conflict.DateTime.In(r.v.loc)))
	}
	return true, nil
}
