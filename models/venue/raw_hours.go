package venue

// HoursFormat names the upstream representation carried by RawHours.
type HoursFormat string

const (
	FormatGoogleWeekdayText HoursFormat = "google_weekday_text"
	FormatHoursTextMap      HoursFormat = "hours_text_map"
	FormatStructured        HoursFormat = "structured"
	FormatBestTime          HoursFormat = "besttime"
)

// RawHours holds a venue's opening hours exactly as an upstream source supplied
// them. Only the field matching Format is read.
type RawHours struct {
	Format      HoursFormat              `json:"format"`
	WeekdayText []string                 `json:"weekday_text,omitempty"`
	TextMap     map[string]string        `json:"text_map,omitempty"`
	Structured  map[string]StructuredDay `json:"structured,omitempty"`
	BestTime    []DayInfoV2              `json:"besttime,omitempty"`
}

// StructuredDay is one day of structured hours: {"open":"16:00","close":"02:00"}.
type StructuredDay struct {
	Open          string `json:"open,omitempty"`
	Close         string `json:"close,omitempty"`
	Closed        bool   `json:"closed,omitempty"`
	Open24h       bool   `json:"open_24h,omitempty"`
	Is24h         bool   `json:"is_24h,omitempty"`
	ClosesNextDay bool   `json:"closes_next_day,omitempty"`
}

// IsEmpty reports whether no hours of any format are present.
func (r RawHours) IsEmpty() bool {
	return len(r.WeekdayText) == 0 && len(r.TextMap) == 0 && len(r.Structured) == 0 && len(r.BestTime) == 0
}
