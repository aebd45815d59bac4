package domain

import (
	"time"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

// WorkSchedule рабочие часы мастера в один день недели
type WorkSchedule struct {
	ID        int64
	MasterID  int64
	Weekday   int // 1..7, понедельник = 1
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValid start < end, день недели в 1..7
func (s *WorkSchedule) IsValid() bool {
	if s.Weekday < MinWeekday || s.Weekday > MaxWeekday {
		return false
	}
	if s.StartTime.Validate() != nil || s.EndTime.Validate() != nil {
		return false
	}
	return s.StartTime.IsBefore(s.EndTime)
}

// Window рабочий интервал на конкретную дату
func (s *WorkSchedule) Window(date types.Date, loc *time.Location) Interval {
	return Interval{Start: s.StartTime.On(date, loc), End: s.EndTime.On(date, loc)}
}

// UnionWindow [min(start), max(end)) по всем расписаниям, ok=false если список пуст
func UnionWindow(schedules []*WorkSchedule) (start, end types.TimeString, ok bool) {
	for _, s := range schedules {
		if !ok || s.StartTime.IsBefore(start) {
			start = s.StartTime
		}
		if !ok || s.EndTime.IsAfter(end) {
			end = s.EndTime
		}
		ok = true
	}
	return start, end, ok
}
