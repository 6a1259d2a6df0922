package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cs-hours/models/hours"
)

func TestFindNextOpen_SkipsPassedShiftsToday(t *testing.T) {
	week := hours.UnsetWeek().With(hours.Monday, scheduled(
		hours.CreateInterval(8, 0, 10, 0),
		hours.CreateInterval(12, 0, 14, 0),
	))

	next, ok := FindNextOpen(week, hours.Monday, 600)
	require.True(t, ok)
	assert.Equal(t, NextOpening{Day: hours.Monday, Offset: 0, OpenMinute: 720, MinutesUntil: 120}, next)
}

func TestFindNextOpen_SkipsClosedAndUnsetDays(t *testing.T) {
	week := hours.UnsetWeek().
		With(hours.Monday, hours.ClosedDay()).
		With(hours.Wednesday, scheduled(hours.CreateInterval(18, 0, 2, 0)))

	next, ok := FindNextOpen(week, hours.Monday, 100)
	require.True(t, ok)
	assert.Equal(t, hours.Wednesday, next.Day)
	assert.Equal(t, 2, next.Offset)
	assert.Equal(t, 2*1440-100+1080, next.MinutesUntil)
}

func TestFindNextOpen_Open24HoursOpensAtMidnight(t *testing.T) {
	week := hours.UnsetWeek().With(hours.Tuesday, hours.Open24HourDay())

	next, ok := FindNextOpen(week, hours.Monday, 1000)
	require.True(t, ok)
	assert.Equal(t, 0, next.OpenMinute)
	assert.Equal(t, 440, next.MinutesUntil)

	next, ok = FindNextOpen(week, hours.Tuesday, 1000)
	require.True(t, ok)
	assert.Equal(t, 0, next.MinutesUntil)
}

func TestFindNextOpen_HorizonIsSixDaysAhead(t *testing.T) {
	// Only today has hours and they already passed; a week later is out of range.
	week := hours.UnsetWeek().With(hours.Monday, scheduled(hours.CreateInterval(8, 0, 10, 0)))

	_, ok := FindNextOpen(week, hours.Monday, 700)
	assert.False(t, ok)

	next, ok := FindNextOpen(week, hours.Tuesday, 700)
	require.True(t, ok)
	assert.Equal(t, 6, next.Offset)
}
