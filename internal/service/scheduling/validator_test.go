package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/ptr"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

func newValidator(s *fakeSchedules, a *fakeAppointments) *Validator {
	return NewValidator(s, NewDetector(a, domain.DefaultSchedulingConfig(), time.UTC), time.UTC)
}

func mondayMaster() (*fakeSchedules, *fakeAppointments) {
	schedules := (&fakeSchedules{}).add(1, 1, "09:00", "18:00")
	appointments := &fakeAppointments{}
	appointments.add(100, 1, monday(10, 0), 30)
	return schedules, appointments
}

func requireRule(t *testing.T, err error, rule string, kind error) {
	t.Helper()
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.Equal(t, rule, ve.Rule)
	assert.ErrorIs(t, err, kind)
	assert.NotEmpty(t, ve.Reason)
}

func TestValidate_BufferBoundary(t *testing.T) {
	v := newValidator(mondayMaster())
	services := domain.ServiceSet{service(1, 30)}

	err := v.Validate(context.Background(), &Draft{MasterID: 1, Services: services, DateTime: ptr.Ptr(monday(10, 39))}, fridayNoon)
	requireRule(t, err, RuleNoOverlap, ErrScheduleConflict)

	err = v.Validate(context.Background(), &Draft{MasterID: 1, Services: services, DateTime: ptr.Ptr(monday(10, 40))}, fridayNoon)
	assert.NoError(t, err)
}

func TestValidate_PreBufferBlocksEarlierBooking(t *testing.T) {
	v := newValidator(mondayMaster())

	// [09:15, 09:45) пересекает занятость [09:30, 10:40)
	err := v.Validate(context.Background(), &Draft{MasterID: 1, Services: domain.ServiceSet{service(1, 30)}, DateTime: ptr.Ptr(monday(9, 15))}, fridayNoon)
	requireRule(t, err, RuleNoOverlap, ErrScheduleConflict)

	err = v.Validate(context.Background(), &Draft{MasterID: 1, Services: domain.ServiceSet{service(1, 30)}, DateTime: ptr.Ptr(monday(9, 0))}, fridayNoon)
	assert.NoError(t, err)
}

func TestValidate_ExcludeSelf(t *testing.T) {
	v := newValidator(mondayMaster())

	err := v.Validate(context.Background(), &Draft{
		ExcludeID: ptr.Ptr(int64(100)),
		MasterID:  1,
		Services:  domain.ServiceSet{service(1, 30)},
		DateTime:  ptr.Ptr(monday(10, 0)),
	}, fridayNoon)
	assert.NoError(t, err)
}

func TestValidate_RuleOrder(t *testing.T) {
	tests := []struct {
		name  string
		draft *Draft
		now   time.Time
		rule  string
		kind  error
	}{
		{
			name:  "no services",
			draft: &Draft{MasterID: 1, DateTime: ptr.Ptr(monday(11, 0))},
			now:   fridayNoon,
			rule:  RuleRequiredFields,
			kind:  ErrInputFormat,
		},
		{
			name:  "no date time",
			draft: &Draft{MasterID: 1, Services: domain.ServiceSet{service(1, 30)}},
			now:   fridayNoon,
			rule:  RuleRequiredFields,
			kind:  ErrInputFormat,
		},
		{
			name:  "past",
			draft: &Draft{MasterID: 1, Services: domain.ServiceSet{service(1, 30)}, DateTime: ptr.Ptr(monday(11, 0))},
			now:   monday(12, 0),
			rule:  RuleNotInPast,
			kind:  ErrScheduleConflict,
		},
		{
			name:  "day off",
			draft: &Draft{MasterID: 1, Services: domain.ServiceSet{service(1, 30)}, DateTime: ptr.Ptr(monday(11, 0).AddDate(0, 0, 1))},
			now:   fridayNoon,
			rule:  RuleWorkingDay,
			kind:  ErrScheduleConflict,
		},
		{
			name:  "before opening",
			draft: &Draft{MasterID: 1, Services: domain.ServiceSet{service(1, 30)}, DateTime: ptr.Ptr(monday(8, 30))},
			now:   fridayNoon,
			rule:  RuleWithinHours,
			kind:  ErrScheduleConflict,
		},
		{
			name:  "starts at closing",
			draft: &Draft{MasterID: 1, Services: domain.ServiceSet{service(1, 30)}, DateTime: ptr.Ptr(monday(18, 0))},
			now:   fridayNoon,
			rule:  RuleFitsHours,
			kind:  ErrScheduleConflict,
		},
		{
			name:  "overruns closing",
			draft: &Draft{MasterID: 1, Services: domain.ServiceSet{service(1, 30), service(2, 30)}, DateTime: ptr.Ptr(monday(17, 30))},
			now:   fridayNoon,
			rule:  RuleFitsHours,
			kind:  ErrScheduleConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newValidator(mondayMaster()).Validate(context.Background(), tt.draft, tt.now)
			requireRule(t, err, tt.rule, tt.kind)
		})
	}
}

func TestValidate_FitsExactlyAtClosing(t *testing.T) {
	v := newValidator(mondayMaster())

	err := v.Validate(context.Background(), &Draft{MasterID: 1, Services: domain.ServiceSet{service(1, 60)}, DateTime: ptr.Ptr(monday(17, 0))}, fridayNoon)
	assert.NoError(t, err)
}

func TestValidate_LongService(t *testing.T) {
	services := domain.ServiceSet{service(1, 30), longService(2)}

	t.Run("date only", func(t *testing.T) {
		err := newValidator(mondayMaster()).Validate(context.Background(),
			&Draft{MasterID: 1, Services: services, Date: ptr.Ptr(mondayDate)}, fridayNoon)
		assert.NoError(t, err)
	})

	t.Run("date derived from date time, no overlap check", func(t *testing.T) {
		d := &Draft{MasterID: 1, Services: services, DateTime: ptr.Ptr(monday(10, 0))}
		err := newValidator(mondayMaster()).Validate(context.Background(), d, fridayNoon)
		require.NoError(t, err)
		require.NotNil(t, d.Date)
		assert.Equal(t, mondayDate, *d.Date)
	})

	t.Run("missing date", func(t *testing.T) {
		err := newValidator(mondayMaster()).Validate(context.Background(),
			&Draft{MasterID: 1, Services: services}, fridayNoon)
		requireRule(t, err, RuleLongService, ErrInputFormat)
	})

	t.Run("past date", func(t *testing.T) {
		err := newValidator(mondayMaster()).Validate(context.Background(),
			&Draft{MasterID: 1, Services: services, Date: ptr.Ptr(types.NewDate(2026, time.October, 12))}, fridayNoon)
		requireRule(t, err, RuleLongService, ErrScheduleConflict)
	})

	t.Run("today is allowed", func(t *testing.T) {
		err := newValidator(mondayMaster()).Validate(context.Background(),
			&Draft{MasterID: 1, Services: services, Date: ptr.Ptr(mondayDate)}, monday(17, 59))
		assert.NoError(t, err)
	})

	t.Run("day off", func(t *testing.T) {
		err := newValidator(mondayMaster()).Validate(context.Background(),
			&Draft{MasterID: 1, Services: services, Date: ptr.Ptr(mondayDate.AddDays(1))}, fridayNoon)
		requireRule(t, err, RuleLongService, ErrScheduleConflict)
	})
}
