package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cs-hours/models/hours"
	"cs-hours/models/venue"
)

func intervalsOf(t *testing.T, week hours.WeeklySchedule, day hours.Weekday) []hours.TimeInterval {
	t.Helper()
	s, ok := week.Day(day)
	require.True(t, ok, "expected %s to be set", day.Key())
	sc, ok := s.(hours.Scheduled)
	require.True(t, ok, "expected %s to be scheduled, got %s", day.Key(), s)
	return sc.Intervals()
}

func TestParseGoogleWeekdayText_PartialWeek(t *testing.T) {
	res, err := ParseGoogleWeekdayText([]string{"Monday: Closed", "Tuesday: Open 24 hours"})

	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, 2, res.Schedule.SetDays())

	mon, _ := res.Schedule.Day(hours.Monday)
	assert.IsType(t, hours.Closed{}, mon)
	tue, _ := res.Schedule.Day(hours.Tuesday)
	assert.IsType(t, hours.Open24Hours{}, tue)

	for _, d := range []hours.Weekday{hours.Sunday, hours.Wednesday, hours.Thursday, hours.Friday, hours.Saturday} {
		_, ok := res.Schedule.Day(d)
		assert.False(t, ok, "%s should be unset", d.Key())
	}
}

func TestParseGoogleWeekdayText_Ranges(t *testing.T) {
	res, err := ParseGoogleWeekdayText([]string{
		"Monday: 6:00 AM – 11:00 PM",
		"Friday: 4:00 PM – 2:00 AM",
		"Saturday: 11:00 AM – 3:00 PM, 5:00 PM – 11:00 PM",
		"Sun: 10 am - 4 pm",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)

	assert.Equal(t, []hours.TimeInterval{{OpenMinute: 360, CloseMinute: 1380}}, intervalsOf(t, res.Schedule, hours.Monday))
	assert.Equal(t, []hours.TimeInterval{{OpenMinute: 960, CloseMinute: 120, ClosesNextDay: true}}, intervalsOf(t, res.Schedule, hours.Friday))
	assert.Equal(t, []hours.TimeInterval{
		{OpenMinute: 660, CloseMinute: 900},
		{OpenMinute: 1020, CloseMinute: 1380},
	}, intervalsOf(t, res.Schedule, hours.Saturday))
	assert.Equal(t, []hours.TimeInterval{{OpenMinute: 600, CloseMinute: 960}}, intervalsOf(t, res.Schedule, hours.Sunday))
}

func TestParseGoogleWeekdayText_SharedPeriod(t *testing.T) {
	res, err := ParseGoogleWeekdayText([]string{
		"Monday: 11:00 AM – 2:00 PM, 5:00 – 10:00 PM",
		"Tuesday: 9 – 11:30 AM",
		"Wednesday: 7:30 PM – 11",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)

	assert.Equal(t, []hours.TimeInterval{
		{OpenMinute: 660, CloseMinute: 840},
		{OpenMinute: 1020, CloseMinute: 1320},
	}, intervalsOf(t, res.Schedule, hours.Monday))
	assert.Equal(t, []hours.TimeInterval{{OpenMinute: 540, CloseMinute: 690}}, intervalsOf(t, res.Schedule, hours.Tuesday))
	assert.Equal(t, []hours.TimeInterval{{OpenMinute: 1170, CloseMinute: 1380}}, intervalsOf(t, res.Schedule, hours.Wednesday))
}

func TestParseGoogleWeekdayText_RejectsAmbiguousMixedRange(t *testing.T) {
	res, err := ParseGoogleWeekdayText([]string{
		"Monday: 17:00 – 10:00 PM",
		"Tuesday: 9:00 AM – 5:00 PM",
	})
	require.NoError(t, err)

	_, ok := res.Schedule.Day(hours.Monday)
	assert.False(t, ok, "monday should be left unset")
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "monday", res.Diagnostics[0].Day)
	assert.Contains(t, res.Diagnostics[0].Message, "without AM/PM")
}

func TestParseGoogleWeekdayText_SkipsBadLines(t *testing.T) {
	res, err := ParseGoogleWeekdayText([]string{
		"Funday: 9:00 AM – 5:00 PM",
		"Tuesday: whenever",
		"no separator here",
		"Wednesday: 12:00 PM – 10:00 PM",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Schedule.SetDays())
	assert.Len(t, res.Diagnostics, 3)
	assert.Equal(t, "Funday", res.Diagnostics[0].Day)
	assert.Equal(t, "tuesday", res.Diagnostics[1].Day)

	_, ok := res.Schedule.Day(hours.Tuesday)
	assert.False(t, ok)
}

func TestParseGoogleWeekdayText_DuplicateKeepsFirst(t *testing.T) {
	res, err := ParseGoogleWeekdayText([]string{"Monday: Closed", "Monday: Open 24 hours"})
	require.NoError(t, err)

	mon, _ := res.Schedule.Day(hours.Monday)
	assert.IsType(t, hours.Closed{}, mon)
	require.Len(t, res.Diagnostics, 1)
}

func TestParseGoogleWeekdayText_NothingUsable(t *testing.T) {
	res, err := ParseGoogleWeekdayText([]string{"Holiday: Closed", "Monday: ???"})

	assert.Nil(t, res)
	require.ErrorIs(t, err, ErrNoUsableDays)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Holiday: Closed\nMonday: ???", perr.RawInput)
	assert.Len(t, perr.Diagnostics, 2)
}

func TestParseGoogleWeekdayText_Empty(t *testing.T) {
	_, err := ParseGoogleWeekdayText(nil)

	assert.ErrorIs(t, err, ErrNoUsableDays)
}

func TestParseHoursTextMap(t *testing.T) {
	res, err := ParseHoursTextMap(map[string]string{
		"monday": "4:00 PM - 2:00 AM",
		"TUE":    "closed",
		"Wed":    "24 hours",
		"thurs":  "17:00 - 24:00",
		"fri":    "nope",
		"holiday": "closed",
	})
	require.NoError(t, err)

	assert.Equal(t, []hours.TimeInterval{{OpenMinute: 960, CloseMinute: 120, ClosesNextDay: true}}, intervalsOf(t, res.Schedule, hours.Monday))
	tue, _ := res.Schedule.Day(hours.Tuesday)
	assert.IsType(t, hours.Closed{}, tue)
	wed, _ := res.Schedule.Day(hours.Wednesday)
	assert.IsType(t, hours.Open24Hours{}, wed)
	assert.Equal(t, []hours.TimeInterval{{OpenMinute: 1020, CloseMinute: 0, ClosesNextDay: true}}, intervalsOf(t, res.Schedule, hours.Thursday))

	_, ok := res.Schedule.Day(hours.Friday)
	assert.False(t, ok)
	assert.Len(t, res.Diagnostics, 2)
}

func TestParseHoursTextMap_DuplicateDaysAreDeterministic(t *testing.T) {
	in := map[string]string{"Monday": "closed", "mon": "9:00 AM - 5:00 PM"}

	for i := 0; i < 20; i++ {
		res, err := ParseHoursTextMap(in)
		require.NoError(t, err)
		// "Monday" sorts before "mon".
		mon, _ := res.Schedule.Day(hours.Monday)
		assert.IsType(t, hours.Closed{}, mon)
	}
}

func TestParseStructuredHours(t *testing.T) {
	res, err := ParseStructuredHours(map[string]venue.StructuredDay{
		"friday":    {Open: "16:00", Close: "02:00"},
		"saturday":  {Open: "10:00", Close: "12:00", ClosesNextDay: true},
		"sunday":    {Closed: true, Open24h: true},
		"monday":    {Open24h: true},
		"tuesday":   {Is24h: true},
		"wednesday": {Open: "16:00"},
		"thursday":  {Open: "4pm", Close: "02:00"},
		"fri":       {Open: "10:00", Close: "11:00"},
	})
	require.NoError(t, err)

	assert.Equal(t, []hours.TimeInterval{{OpenMinute: 960, CloseMinute: 120, ClosesNextDay: true}}, intervalsOf(t, res.Schedule, hours.Friday))
	assert.Equal(t, []hours.TimeInterval{{OpenMinute: 600, CloseMinute: 720, ClosesNextDay: true}}, intervalsOf(t, res.Schedule, hours.Saturday))

	sun, _ := res.Schedule.Day(hours.Sunday)
	assert.IsType(t, hours.Closed{}, sun)
	mon, _ := res.Schedule.Day(hours.Monday)
	assert.IsType(t, hours.Open24Hours{}, mon)
	tue, _ := res.Schedule.Day(hours.Tuesday)
	assert.IsType(t, hours.Open24Hours{}, tue)

	for _, d := range []hours.Weekday{hours.Wednesday, hours.Thursday} {
		_, ok := res.Schedule.Day(d)
		assert.False(t, ok, "%s should be unset", d.Key())
	}
	assert.Len(t, res.Diagnostics, 3)
}

func TestParseStructuredHoursJSON(t *testing.T) {
	res, err := ParseStructuredHoursJSON([]byte(`{"friday": {"open": "16:00", "close": "02:00"}, "monday": {"closed": true}}`))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Schedule.SetDays())

	_, err = ParseStructuredHoursJSON([]byte(`{"friday":`))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, `{"friday":`, perr.RawInput)
	assert.NotErrorIs(t, err, ErrNoUsableDays)
}

func TestParseBestTimeHours(t *testing.T) {
	res, err := ParseBestTimeHours([]venue.DayInfoV2{
		{DayInt: 0, DayText: "Monday", H24: []venue.OpenCloseDetail{{Opens: 18, Closes: 2}}, CrossesMidnight: true},
		{DayInt: 1, DayText: "Tuesday"},
		{DayInt: 2, DayText: "", Open24H: true},
		{DayInt: 4, DayText: "Friday", CrossesMidnight: true, H24: []venue.OpenCloseDetail{
			{Opens: 11, Closes: 15},
			{Opens: 17, OpensMinutes: 30, Closes: 23, ClosesMinutes: 30},
		}},
		{DayInt: 9, DayText: "someday"},
		{DayInt: 5, DayText: "Saturday", H24: []venue.OpenCloseDetail{{Opens: 25, Closes: 2}}},
	})
	require.NoError(t, err)

	assert.Equal(t, []hours.TimeInterval{{OpenMinute: 1080, CloseMinute: 120, ClosesNextDay: true}}, intervalsOf(t, res.Schedule, hours.Monday))
	tue, _ := res.Schedule.Day(hours.Tuesday)
	assert.IsType(t, hours.Closed{}, tue)
	wed, _ := res.Schedule.Day(hours.Wednesday)
	assert.IsType(t, hours.Open24Hours{}, wed)
	assert.Equal(t, []hours.TimeInterval{
		{OpenMinute: 660, CloseMinute: 900},
		{OpenMinute: 1050, CloseMinute: 1410, ClosesNextDay: true},
	}, intervalsOf(t, res.Schedule, hours.Friday))

	_, ok := res.Schedule.Day(hours.Saturday)
	assert.False(t, ok)
	assert.Len(t, res.Diagnostics, 2)
}

func TestParseRawHours_Dispatch(t *testing.T) {
	res, err := ParseRawHours(venue.RawHours{
		Format:  venue.FormatHoursTextMap,
		TextMap: map[string]string{"sat": "11:00 - 15:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Schedule.SetDays())

	_, err = ParseRawHours(venue.RawHours{Format: "yelp"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseTimeToken(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12:00 AM", 0, true},
		{"12 PM", 720, true},
		{"12:30 pm", 750, true},
		{"1:15PM", 795, true},
		{"9 a.m.", 540, true},
		{"24:00", 0, true},
		{"07:45", 465, true},
		{"13:00 PM", 0, false},
		{"0 AM", 0, false},
		{"noon", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTimeToken(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
