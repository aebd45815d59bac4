package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

func newAggregator(s *fakeSchedules, a *fakeAppointments) *Aggregator {
	return NewAggregator(s, newGenerator(s, a))
}

func TestMastersWithSlots(t *testing.T) {
	schedules := (&fakeSchedules{}).
		add(1, 1, "09:00", "12:00").
		add(2, 1, "09:00", "10:00").
		add(3, 1, "09:00", "18:00").
		add(4, 1, "09:00", "18:00")
	appointments := &fakeAppointments{}
	// мастер 2 занят весь день
	appointments.add(200, 2, monday(9, 0), 60)

	inactive := master(4, 1)
	inactive.IsActive = false
	masters := []*domain.Master{
		master(1, 1, 2),
		master(2, 1),
		master(3, 2), // не умеет услугу 1
		inactive,
		master(5, 1), // не работает по понедельникам
	}

	result, err := newAggregator(schedules, appointments).
		MastersWithSlots(context.Background(), masters, domain.ServiceSet{service(1, 30)}, mondayDate, fridayNoon)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(1), result[0].Master.ID)
	assert.Len(t, result[0].Slots, 6)
}

func TestMastersWithSlots_LongIncludesAllWorking(t *testing.T) {
	schedules := (&fakeSchedules{}).
		add(1, 1, "09:00", "12:00").
		add(2, 1, "09:00", "10:00")
	appointments := &fakeAppointments{}
	appointments.add(200, 2, monday(9, 0), 60)

	masters := []*domain.Master{master(1, 7), master(2, 7), master(3, 7)}

	result, err := newAggregator(schedules, appointments).
		MastersWithSlots(context.Background(), masters, domain.ServiceSet{longService(7)}, mondayDate, fridayNoon)

	require.NoError(t, err)
	require.Len(t, result, 2)
	for _, r := range result {
		assert.NotNil(t, r.Slots)
		assert.Empty(t, r.Slots)
	}
}

func TestAvailableDates_ClampedToToday(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 1, "09:00", "12:00")

	dates, err := newAggregator(schedules, &fakeAppointments{}).
		AvailableDates(context.Background(), []*domain.Master{master(1, 1)}, domain.ServiceSet{service(1, 30)}, 2026, time.October, fridayNoon)

	require.NoError(t, err)
	assert.Equal(t, []types.Date{
		types.NewDate(2026, time.October, 19),
		types.NewDate(2026, time.October, 26),
	}, dates)
}

func TestAvailableDates_FullyBookedDayExcluded(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 1, "09:00", "10:00")
	appointments := &fakeAppointments{}
	appointments.add(200, 1, monday(9, 0), 60)

	dates, err := newAggregator(schedules, appointments).
		AvailableDates(context.Background(), []*domain.Master{master(1, 1)}, domain.ServiceSet{service(1, 30)}, 2026, time.October, fridayNoon)

	require.NoError(t, err)
	assert.Equal(t, []types.Date{types.NewDate(2026, time.October, 26)}, dates)
}

func TestAvailableDates_ShortCircuitsPerDay(t *testing.T) {
	schedules := (&fakeSchedules{}).
		add(1, 1, "09:00", "12:00").
		add(2, 1, "09:00", "12:00")
	appointments := &fakeAppointments{}

	dates, err := newAggregator(schedules, appointments).
		AvailableDates(context.Background(), []*domain.Master{master(1, 1), master(2, 1)}, domain.ServiceSet{service(1, 30)}, 2026, time.October, fridayNoon)

	require.NoError(t, err)
	assert.Len(t, dates, 2)
	// по одному чтению записей на каждый понедельник
	assert.Equal(t, 2, appointments.calls)
}

func TestAvailableDates_LongServiceByWeekdayOnly(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 3, "09:00", "10:00")
	appointments := &fakeAppointments{}

	dates, err := newAggregator(schedules, appointments).
		AvailableDates(context.Background(), []*domain.Master{master(1, 7)}, domain.ServiceSet{longService(7)}, 2026, time.October, fridayNoon)

	require.NoError(t, err)
	assert.Equal(t, []types.Date{
		types.NewDate(2026, time.October, 21),
		types.NewDate(2026, time.October, 28),
	}, dates)
	assert.Zero(t, appointments.calls)
}

func TestAvailableDates_PastMonthEmpty(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 1, "09:00", "12:00")

	dates, err := newAggregator(schedules, &fakeAppointments{}).
		AvailableDates(context.Background(), []*domain.Master{master(1, 1)}, domain.ServiceSet{service(1, 30)}, 2026, time.September, fridayNoon)

	require.NoError(t, err)
	assert.NotNil(t, dates)
	assert.Empty(t, dates)
}
