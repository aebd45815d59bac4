package domain

import "time"

// Interval полуинтервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval интервал длительностью d от start
func NewInterval(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

// Overlaps пересекаются ли интервалы. Касание концами пересечением не считается
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Duration длина интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// BusyInterval занятость мастера записью с буферами:
// [start - PreBuffer, start + duration + PostBuffer)
func BusyInterval(start time.Time, duration time.Duration, cfg SchedulingConfig) Interval {
	return Interval{
		Start: start.Add(-cfg.PreBuffer),
		End:   start.Add(duration + cfg.PostBuffer),
	}
}
