package appointments

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
	"github.com/m04kA/SalonBookingService/pkg/logger"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

type fakeRepo struct {
	items      map[int64]*domain.Appointment
	lastPage   domain.PendingFilter
	lastPeriod domain.PeriodFilter
	lastIDs    []int64
	lastTo     domain.Confirmation
	updateErr  error
}

func newFakeRepo(items ...*domain.Appointment) *fakeRepo {
	r := &fakeRepo{items: make(map[int64]*domain.Appointment)}
	for _, a := range items {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (r *fakeRepo) GetByMasterAndDate(_ context.Context, masterID int64, date types.Date, loc *time.Location) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.items {
		if a.MasterID == masterID && a.DateTime != nil && types.DateOf(a.DateTime.In(loc)).Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByPeriod(_ context.Context, filter domain.PeriodFilter, loc *time.Location) ([]*domain.Appointment, error) {
	r.lastPeriod = filter
	out := make([]*domain.Appointment, 0)
	for _, a := range r.items {
		if filter.MasterID != nil && a.MasterID != *filter.MasterID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeRepo) ListPending(_ context.Context, filter domain.PendingFilter) ([]*domain.Appointment, error) {
	r.lastPage = filter
	var out []*domain.Appointment
	for _, a := range r.items {
		if a.IsPending() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) CountPending(_ context.Context) (int, error) {
	n := 0
	for _, a := range r.items {
		if a.IsPending() {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) UpdateConfirmation(_ context.Context, ids []int64, to domain.Confirmation) (int64, error) {
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	r.lastIDs, r.lastTo = ids, to
	var n int64
	for _, id := range ids {
		if a, ok := r.items[id]; ok && a.Confirmation.CanTransitionTo(to) {
			a.Confirmation = to
			n++
		}
	}
	return n, nil
}

func appointment(id int64, c domain.Confirmation) *domain.Appointment {
	at := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{ID: id, MasterID: 1, DateTime: &at, Confirmation: c, ServicesCount: 1}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeRepo(appointment(1, domain.ConfirmationPending)), time.UTC, logger.Nop())

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Confirmation)
	assert.Equal(t, []int64{}, resp.ServiceIDs)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestConfirm_OnlyPendingRowsChange(t *testing.T) {
	repo := newFakeRepo(
		appointment(1, domain.ConfirmationPending),
		appointment(2, domain.ConfirmationRejected),
		appointment(3, domain.ConfirmationPending),
	)
	svc := NewService(repo, time.UTC, logger.Nop())

	resp, err := svc.Confirm(context.Background(), &models.ConfirmationRequest{IDs: []int64{3, 1, 2, 1}})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Affected)
	assert.Equal(t, []int64{1, 2, 3}, repo.lastIDs)
	assert.Equal(t, domain.ConfirmationRejected, repo.items[2].Confirmation)
	assert.Equal(t, domain.ConfirmationConfirmed, repo.items[3].Confirmation)
}

func TestReject(t *testing.T) {
	repo := newFakeRepo(appointment(1, domain.ConfirmationConfirmed))
	svc := NewService(repo, time.UTC, logger.Nop())

	resp, err := svc.Reject(context.Background(), &models.ConfirmationRequest{IDs: []int64{1}})

	require.NoError(t, err)
	assert.Zero(t, resp.Affected)
	assert.Equal(t, domain.ConfirmationRejected, repo.lastTo)
}

func TestConfirm_Errors(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC, logger.Nop())

	_, err := svc.Confirm(context.Background(), &models.ConfirmationRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.updateErr = fmt.Errorf("wrapped: %w", errors.New("connection reset"))
	_, err = svc.Confirm(context.Background(), &models.ConfirmationRequest{IDs: []int64{1}})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListPending(t *testing.T) {
	repo := newFakeRepo(appointment(1, domain.ConfirmationPending), appointment(2, domain.ConfirmationConfirmed))
	svc := NewService(repo, time.UTC, logger.Nop())

	resp, err := svc.ListPending(context.Background(), &models.PendingRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
	require.NotNil(t, resp.Total)
	assert.Equal(t, 1, *resp.Total)
	assert.Equal(t, defaultPageSize, repo.lastPage.Limit)

	_, err = svc.ListPending(context.Background(), &models.PendingRequest{Limit: domain.MaxPendingPageSize + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMasterDay(t *testing.T) {
	svc := NewService(newFakeRepo(appointment(1, domain.ConfirmationPending)), time.UTC, logger.Nop())

	resp, err := svc.MasterDay(context.Background(), 1, types.NewDate(2026, time.October, 19))
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	resp, err = svc.MasterDay(context.Background(), 1, types.NewDate(2026, time.October, 20))
	require.NoError(t, err)
	assert.NotNil(t, resp.Appointments)
	assert.Empty(t, resp.Appointments)
}

func TestWeeklyBoard_GroupsByDay(t *testing.T) {
	wednesday := types.NewDate(2026, time.October, 21)
	evening := time.Date(2026, time.October, 25, 18, 0, 0, 0, time.UTC)
	repo := newFakeRepo(
		appointment(1, domain.ConfirmationPending),
		&domain.Appointment{ID: 2, MasterID: 1, Date: &wednesday, ServicesCount: 1},
		&domain.Appointment{ID: 3, MasterID: 2, DateTime: &evening, ServicesCount: 1},
	)
	svc := NewService(repo, time.UTC, logger.Nop())

	// четверг той же недели
	resp, err := svc.WeeklyBoard(context.Background(), &models.WeeklyRequest{Date: types.NewDate(2026, time.October, 22)})

	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2026, time.October, 19), repo.lastPeriod.From)
	assert.Equal(t, types.NewDate(2026, time.October, 26), repo.lastPeriod.To)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "2026-10-19", resp.Days[0].Date)
	assert.Equal(t, "Понедельник", resp.Days[0].Day)
	assert.Equal(t, "Воскресенье", resp.Days[6].Day)
	require.Len(t, resp.Days[0].Appointments, 1)
	assert.Equal(t, int64(1), resp.Days[0].Appointments[0].ID)
	require.Len(t, resp.Days[2].Appointments, 1)
	assert.Equal(t, int64(2), resp.Days[2].Appointments[0].ID)
	require.Len(t, resp.Days[6].Appointments, 1)
	assert.NotNil(t, resp.Days[1].Appointments)
	assert.Empty(t, resp.Days[1].Appointments)
}

func TestWeeklyBoard_MasterFilterAndSundayInput(t *testing.T) {
	repo := newFakeRepo(appointment(1, domain.ConfirmationPending))
	svc := NewService(repo, time.UTC, logger.Nop())
	master := int64(2)

	resp, err := svc.WeeklyBoard(context.Background(), &models.WeeklyRequest{Date: types.NewDate(2026, time.October, 25), MasterID: &master})

	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2026, time.October, 19), repo.lastPeriod.From)
	for _, d := range resp.Days {
		assert.Empty(t, d.Appointments)
	}

	_, err = svc.WeeklyBoard(context.Background(), &models.WeeklyRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBusySlots(t *testing.T) {
	a := appointment(1, domain.ConfirmationRejected)
	a.DurationMinutes = 90
	svc := NewService(newFakeRepo(a), time.UTC, logger.Nop())

	resp, err := svc.BusySlots(context.Background(), 1, types.NewDate(2026, time.October, 19))

	require.NoError(t, err)
	assert.False(t, resp.AllDay)
	assert.Equal(t, []models.BusyInterval{{Start: "10:00", End: "11:30"}}, resp.Busy)

	resp, err = svc.BusySlots(context.Background(), 1, types.NewDate(2026, time.October, 20))
	require.NoError(t, err)
	assert.NotNil(t, resp.Busy)
	assert.Empty(t, resp.Busy)

	_, err = svc.BusySlots(context.Background(), 0, types.NewDate(2026, time.October, 20))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
