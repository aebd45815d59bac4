package scheduling

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

type fakeSchedules struct {
	items []*domain.WorkSchedule
	err   error
}

func (f *fakeSchedules) add(masterID int64, weekday int, start, end types.TimeString) *fakeSchedules {
	f.items = append(f.items, &domain.WorkSchedule{MasterID: masterID, Weekday: weekday, StartTime: start, EndTime: end})
	return f
}

func (f *fakeSchedules) HoursFor(_ context.Context, masterID int64, weekday int) (*domain.WorkSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.items {
		if s.MasterID == masterID && s.Weekday == weekday {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSchedules) HoursForAny(_ context.Context, masterIDs []int64, weekday int) ([]*domain.WorkSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int64]struct{}, len(masterIDs))
	for _, id := range masterIDs {
		wanted[id] = struct{}{}
	}
	var out []*domain.WorkSchedule
	for _, s := range f.items {
		if _, ok := wanted[s.MasterID]; ok && s.Weekday == weekday {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeAppointments struct {
	mu    sync.Mutex
	items []*domain.Appointment
	calls int
}

func (f *fakeAppointments) add(id, masterID int64, start time.Time, durationMin int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, &domain.Appointment{
		ID:              id,
		MasterID:        masterID,
		DateTime:        &start,
		DurationMinutes: durationMin,
		ServicesCount:   1,
		Confirmation:    domain.ConfirmationPending,
	})
}

func (f *fakeAppointments) GetByMasterAndDate(_ context.Context, masterID int64, date types.Date, loc *time.Location) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	var out []*domain.Appointment
	for _, a := range f.items {
		if a.MasterID != masterID {
			continue
		}
		switch {
		case a.DateTime != nil && types.DateOf(a.DateTime.In(loc)) == date:
			out = append(out, a)
		case a.DateTime == nil && a.Date != nil && *a.Date == date:
			out = append(out, a)
		}
	}
	return out, nil
}

// 2026-10-19 понедельник
func monday(h, m int) time.Time {
	return time.Date(2026, time.October, 19, h, m, 0, 0, time.UTC)
}

var (
	mondayDate = types.NewDate(2026, time.October, 19)
	fridayNoon = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
)

func service(id int64, minutes int) *domain.Service {
	return &domain.Service{ID: id, Name: "svc", DurationMinutes: minutes}
}

func longService(id int64) *domain.Service {
	return &domain.Service{ID: id, Name: "long", DurationMinutes: 240, IsLong: true}
}

func master(id int64, serviceIDs ...int64) *domain.Master {
	return &domain.Master{ID: id, FirstName: "Мастер", IsActive: true, IsEmployee: true, ServiceIDs: serviceIDs}
}
