package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

func newGenerator(s *fakeSchedules, a *fakeAppointments) *SlotGenerator {
	return NewSlotGenerator(s, a, domain.DefaultSchedulingConfig(), time.UTC)
}

func TestGenerate_MondayScenario(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 1, "09:00", "12:00")
	appointments := &fakeAppointments{}
	appointments.add(100, 1, monday(10, 0), 30)

	slots, err := newGenerator(schedules, appointments).
		Generate(context.Background(), 1, domain.ServiceSet{service(1, 30)}, mondayDate, fridayNoon)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "11:30"}, slots)
}

func TestGenerate_LastSlotFitsDayEnd(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 1, "09:00", "18:00")

	slots, err := newGenerator(schedules, &fakeAppointments{}).
		Generate(context.Background(), 1, domain.ServiceSet{service(1, 60)}, mondayDate, fridayNoon)

	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
	assert.Len(t, slots, 17)
	assert.NotContains(t, slots, types.TimeString("17:30"))
}

func TestGenerate_GranularityIndependentOfDuration(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 1, "09:00", "11:00")

	slots, err := newGenerator(schedules, &fakeAppointments{}).
		Generate(context.Background(), 1, domain.ServiceSet{service(1, 45), service(2, 45)}, mondayDate, fridayNoon)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slots)
}

func TestGenerate_DayOffIsEmptyNotError(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 2, "09:00", "18:00")

	slots, err := newGenerator(schedules, &fakeAppointments{}).
		Generate(context.Background(), 1, domain.ServiceSet{service(1, 30)}, mondayDate, fridayNoon)

	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerate_ExcludesSlotsBeforeNoticeCutoff(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 1, "09:00", "18:00")
	now := monday(10, 0)

	slots, err := newGenerator(schedules, &fakeAppointments{}).
		Generate(context.Background(), 1, domain.ServiceSet{service(1, 60)}, mondayDate, now)

	require.NoError(t, err)
	require.NotEmpty(t, slots)
	// 10:30 = now + 30 мин, не строго позже
	assert.Equal(t, types.TimeString("11:00"), slots[0])
	for _, s := range slots {
		assert.Greater(t, s.Minutes(), types.NewTimeString(now).Minutes()+30)
	}
}

func TestGenerate_LongServiceHasNoTimeSlots(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 1, "09:00", "18:00")
	appointments := &fakeAppointments{}

	slots, err := newGenerator(schedules, appointments).
		Generate(context.Background(), 1, domain.ServiceSet{service(1, 30), longService(2)}, mondayDate, fridayNoon)

	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.Zero(t, appointments.calls)
}

func TestGenerate_Idempotent(t *testing.T) {
	schedules := (&fakeSchedules{}).add(1, 1, "09:00", "18:00")
	appointments := &fakeAppointments{}
	appointments.add(100, 1, monday(13, 0), 90)
	g := newGenerator(schedules, appointments)
	services := domain.ServiceSet{service(1, 30)}

	first, err := g.Generate(context.Background(), 1, services, mondayDate, fridayNoon)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), 1, services, mondayDate, fridayNoon)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_StoreError(t *testing.T) {
	schedules := &fakeSchedules{err: errors.New("db down")}

	_, err := newGenerator(schedules, &fakeAppointments{}).
		Generate(context.Background(), 1, domain.ServiceSet{service(1, 30)}, mondayDate, fridayNoon)

	assert.ErrorIs(t, err, ErrStore)
}

func TestFindConflict_SkipsExcludedAndEmpty(t *testing.T) {
	start := monday(10, 0)
	existing := []*domain.Appointment{
		{ID: 1, DateTime: &start, DurationMinutes: 30, ServicesCount: 0},
		{ID: 2, DateTime: &start, DurationMinutes: 30, ServicesCount: 1},
	}
	candidate := domain.NewInterval(monday(10, 15), 30*time.Minute)
	cfg := domain.DefaultSchedulingConfig()

	assert.Equal(t, int64(2), FindConflict(existing, candidate, cfg, nil).ID)

	exclude := int64(2)
	assert.Nil(t, FindConflict(existing, candidate, cfg, &exclude))
}
