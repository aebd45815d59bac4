package schedules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SalonBookingService/internal/service/schedules/models"
	"github.com/m04kA/SalonBookingService/pkg/logger"
)

type fakeSchedules struct {
	items []*domain.WorkSchedule
	// имитирует гонку: проверка не видит чужую вставку, а ограничение в БД срабатывает
	raceOnCreate bool
}

func (f *fakeSchedules) Create(_ context.Context, s *domain.WorkSchedule) (*domain.WorkSchedule, error) {
	if f.raceOnCreate {
		return nil, scheduleRepo.ErrDuplicateSchedule
	}
	s.ID = int64(len(f.items) + 1)
	f.items = append(f.items, s)
	return s, nil
}

func (f *fakeSchedules) Update(_ context.Context, s *domain.WorkSchedule) (*domain.WorkSchedule, error) {
	for _, it := range f.items {
		if it.MasterID == s.MasterID && it.Weekday == s.Weekday {
			it.StartTime, it.EndTime = s.StartTime, s.EndTime
			return it, nil
		}
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeSchedules) Delete(_ context.Context, masterID int64, weekday int) error {
	for i, it := range f.items {
		if it.MasterID == masterID && it.Weekday == weekday {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return scheduleRepo.ErrScheduleNotFound
}

func (f *fakeSchedules) HoursFor(_ context.Context, masterID int64, weekday int) (*domain.WorkSchedule, error) {
	for _, it := range f.items {
		if it.MasterID == masterID && it.Weekday == weekday {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeSchedules) ListByMaster(_ context.Context, masterID int64) ([]*domain.WorkSchedule, error) {
	var out []*domain.WorkSchedule
	for _, it := range f.items {
		if it.MasterID == masterID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeMasters map[int64]*domain.Master

func (f fakeMasters) GetMasterByID(_ context.Context, id int64) (*domain.Master, error) {
	m, ok := f[id]
	if !ok {
		return nil, catalogRepo.ErrMasterNotFound
	}
	return m, nil
}

func newService() (*Service, *fakeSchedules) {
	repo := &fakeSchedules{}
	masters := fakeMasters{1: {ID: 1, IsActive: true, IsEmployee: true}}
	return NewService(repo, masters, logger.Nop()), repo
}

func monday(start, end string) *models.SetScheduleRequest {
	return &models.SetScheduleRequest{MasterID: 1, Weekday: 1, StartTime: start, EndTime: end}
}

func TestSet(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Set(context.Background(), monday("09:00", "18:00"))

	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "18:00", resp.EndTime)
}

func TestSet_SecondScheduleSameDayIsDuplicate(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Set(context.Background(), monday("09:00", "18:00"))
	require.NoError(t, err)

	_, err = svc.Set(context.Background(), monday("10:00", "12:00"))
	assert.ErrorIs(t, err, ErrDuplicateSchedule)
}

func TestSet_ConstraintCatchesRace(t *testing.T) {
	svc, repo := newService()
	repo.raceOnCreate = true

	_, err := svc.Set(context.Background(), monday("09:00", "18:00"))

	assert.ErrorIs(t, err, ErrDuplicateSchedule)
}

func TestSet_Validation(t *testing.T) {
	svc, _ := newService()

	tests := []struct {
		name string
		req  *models.SetScheduleRequest
		want error
	}{
		{"start after end", monday("18:00", "09:00"), ErrInvalidInput},
		{"equal bounds", monday("09:00", "09:00"), ErrInvalidInput},
		{"bad time", monday("9am", "18:00"), ErrInvalidInput},
		{"bad weekday", &models.SetScheduleRequest{MasterID: 1, Weekday: 8, StartTime: "09:00", EndTime: "18:00"}, ErrInvalidInput},
		{"unknown master", &models.SetScheduleRequest{MasterID: 7, Weekday: 1, StartTime: "09:00", EndTime: "18:00"}, ErrMasterNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Set(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc, _ := newService()
	_, err := svc.Set(context.Background(), monday("09:00", "18:00"))
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), monday("10:00", "19:00"))
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)

	require.NoError(t, svc.Delete(context.Background(), 1, 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, 1), ErrScheduleNotFound)

	_, err = svc.Update(context.Background(), monday("10:00", "19:00"))
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestGetWeek(t *testing.T) {
	svc, _ := newService()

	week, err := svc.GetWeek(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, week.Schedules)
	assert.Empty(t, week.Schedules)

	_, err = svc.GetWeek(context.Background(), 2)
	assert.ErrorIs(t, err, ErrMasterNotFound)
}
