package parser

import (
	"encoding/json"
	"sort"
)

// ParseHoursTextMap reads a weekday-keyed map of range strings, e.g.
// {"monday": "4:00 PM - 2:00 AM", "Tue": "closed"}. Keys may use any casing or a
// common abbreviation. Keys are processed in sorted order so duplicates
// ("mon" and "Monday") resolve the same way on every call.
func ParseHoursTextMap(days map[string]string) (*Result, error) {
	b := newScheduleBuilder("hours text map")
	for _, key := range sortedKeys(days) {
		value := days[key]
		day, ok := lookupWeekday(key)
		if !ok {
			b.skip(key, value, "unrecognized weekday")
			continue
		}
		s, err := parseDayValue(value)
		if err != nil {
			b.skip(day.Key(), value, err.Error())
			continue
		}
		b.set(day, s, value)
	}
	return b.finish(rawJSON(days))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func rawJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
