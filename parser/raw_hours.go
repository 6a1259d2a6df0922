package parser

import (
	"fmt"

	"cs-hours/models/venue"
)

// ParseRawHours dispatches to the parser matching raw.Format.
func ParseRawHours(raw venue.RawHours) (*Result, error) {
	switch raw.Format {
	case venue.FormatGoogleWeekdayText:
		return ParseGoogleWeekdayText(raw.WeekdayText)
	case venue.FormatHoursTextMap:
		return ParseHoursTextMap(raw.TextMap)
	case venue.FormatStructured:
		return ParseStructuredHours(raw.Structured)
	case venue.FormatBestTime:
		return ParseBestTimeHours(raw.BestTime)
	default:
		return nil, &ParseError{
			Message:  fmt.Sprintf("unknown hours format %q", raw.Format),
			RawInput: rawJSON(raw),
			Err:      ErrUnknownFormat,
		}
	}
}
