package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"cs-hours/models/hours"
)

// DailyOpenHours splits each day's open time into hours before and after
// midnight. Unset and closed days are zero.
func DailyOpenHours(schedule hours.WeeklySchedule) (sameDay, afterMidnight [hours.DaysPerWeek]float64) {
	for _, d := range hours.AllWeekdays {
		s, ok := schedule.Day(d)
		if !ok {
			continue
		}
		switch day := s.(type) {
		case hours.Open24Hours:
			sameDay[d] = 24
		case hours.Scheduled:
			for _, iv := range day.Intervals() {
				if iv.ClosesNextDay {
					sameDay[d] += float64(hours.MinutesPerDay-iv.OpenMinute) / hours.MinutesPerHour
					afterMidnight[d] += float64(iv.CloseMinute) / hours.MinutesPerHour
				} else {
					sameDay[d] += float64(iv.CloseMinute-iv.OpenMinute) / hours.MinutesPerHour
				}
			}
		}
	}
	return sameDay, afterMidnight
}

// RenderWeeklyHoursChart writes an HTML page with a stacked bar per weekday
// showing how many hours the venue is open.
func RenderWeeklyHoursChart(w io.Writer, title string, schedule hours.WeeklySchedule) error {
	sameDay, afterMidnight := DailyOpenHours(schedule)

	labels := make([]string, 0, hours.DaysPerWeek)
	sameDayBars := make([]opts.BarData, 0, hours.DaysPerWeek)
	overnightBars := make([]opts.BarData, 0, hours.DaysPerWeek)
	for _, d := range hours.AllWeekdays {
		labels = append(labels, d.Key())
		sameDayBars = append(sameDayBars, opts.BarData{Value: sameDay[d]})
		overnightBars = append(overnightBars, opts.BarData{Value: afterMidnight[d]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "800px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "open hours per day"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "hours", Max: 30}),
	)
	bar.SetXAxis(labels).
		AddSeries("same day", sameDayBars).
		AddSeries("after midnight", overnightBars).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "open"}))

	return bar.Render(w)
}
