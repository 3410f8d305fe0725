package schedule

import (
	"strings"
	"time"
)

// Layouts accepted for event timestamps besides RFC3339. Zone-less values
// are interpreted in AppZone.
var stampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseStamp parses an event timestamp string. A value without an explicit
// offset gets the application zone attached.
func ParseStamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range stampLayouts {
		if t, err := time.ParseInLocation(layout, s, AppZone); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatStamp serializes an instant in the canonical event timestamp shape:
// ISO-8601 local date-time with the application zone's offset.
func FormatStamp(t time.Time) string {
	return t.In(AppZone).Format(time.RFC3339)
}

// WithinWindow reports whether now falls within [startDT, endDT], inclusive
// on both boundaries. Absent or unparsable timestamps report not-within;
// this never surfaces an error to the caller.
func WithinWindow(startDT, endDT string, now time.Time) bool {
	start, ok := ParseStamp(startDT)
	if !ok {
		return false
	}
	end, ok := ParseStamp(endDT)
	if !ok {
		return false
	}
	n := now.In(AppZone)
	return !n.Before(start) && !n.After(end)
}
