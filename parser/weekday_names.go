package parser

import (
	"strings"

	"cs-hours/models/hours"
)

var weekdayNames = map[string]hours.Weekday{
	"sunday": hours.Sunday, "sun": hours.Sunday, "su": hours.Sunday,
	"monday": hours.Monday, "mon": hours.Monday, "mo": hours.Monday,
	"tuesday": hours.Tuesday, "tue": hours.Tuesday, "tues": hours.Tuesday, "tu": hours.Tuesday,
	"wednesday": hours.Wednesday, "wed": hours.Wednesday, "weds": hours.Wednesday, "we": hours.Wednesday,
	"thursday": hours.Thursday, "thu": hours.Thursday, "thur": hours.Thursday, "thurs": hours.Thursday, "th": hours.Thursday,
	"friday": hours.Friday, "fri": hours.Friday, "fr": hours.Friday,
	"saturday": hours.Saturday, "sat": hours.Saturday, "sa": hours.Saturday,
}

// lookupWeekday resolves a full or abbreviated weekday name in any casing.
func lookupWeekday(name string) (hours.Weekday, bool) {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")
	d, ok := weekdayNames[key]
	return d, ok
}
