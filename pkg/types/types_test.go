package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Parse(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)
	assert.Equal(t, 570, ts.Minutes())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("17:00")

	end, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), end)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("10:40").IsAfter("10:39"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("10:00:00")))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:45"), ts)
}

func TestDate_ISOWeekday(t *testing.T) {
	// 2026-10-19 понедельник
	monday := NewDate(2026, time.October, 19)
	assert.Equal(t, 1, monday.ISOWeekday())
	assert.Equal(t, 7, monday.AddDays(6).ISOWeekday())
}

func TestDate_ParseAndCompare(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", d.AddDays(1).String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))

	_, err = ParseDate("28.02.2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*3600)
	at := TimeString("10:15").On(NewDate(2026, time.October, 19), loc)
	assert.Equal(t, time.Date(2026, time.October, 19, 10, 15, 0, 0, loc), at)
}
