// Package schedule decides whether a place is open, or an event active, at a
// given instant. All evaluation happens in the application's fixed zone,
// never the caller's. Malformed temporal data is a recoverable "closed"
// state, not an error.
package schedule

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
)

// AppZone is the single supported local time zone (Europe/Zurich).
var AppZone = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Zurich")
	if err != nil {
		return time.FixedZone("CET", 3600)
	}
	return loc
}()

// Now returns the current instant in the application zone.
func Now() time.Time {
	return time.Now().In(AppZone)
}

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Lun",
	time.Tuesday:   "Mar",
	time.Wednesday: "Mer",
	time.Thursday:  "Jeu",
	time.Friday:    "Ven",
	time.Saturday:  "Sam",
	time.Sunday:    "Dim",
}

// ParseWeek parses a serialized weekly opening-hours specification. ok is
// false for empty or malformed input; callers treat that as closed every day.
func ParseWeek(hoursJSON string) (model.WeekHours, bool) {
	var week model.WeekHours
	if strings.TrimSpace(hoursJSON) == "" {
		return week, false
	}
	if err := json.Unmarshal([]byte(hoursJSON), &week); err != nil {
		return model.WeekHours{}, false
	}
	return week, true
}

// CanonicalWeek serializes a specification in the canonical shape. Output
// round-trips byte-for-byte through ParseWeek and back.
func CanonicalWeek(week model.WeekHours) string {
	b, err := json.Marshal(week)
	if err != nil {
		return ""
	}
	return string(b)
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// OpenAt reports whether the subject is open at t according to hoursJSON.
// The instant is resolved to its weekday and clock time in AppZone; both
// interval boundaries are inclusive. Intervals with unparsable clock strings
// are skipped, and start > end never matches.
func OpenAt(hoursJSON string, t time.Time) bool {
	week, ok := ParseWeek(hoursJSON)
	if !ok {
		return false
	}
	local := t.In(AppZone)
	day := week.Day(weekdayLabels[local.Weekday()])
	if !day.Open {
		return false
	}
	clock := local.Hour()*60 + local.Minute()
	for _, iv := range day.Intervals {
		start, okStart := parseClock(iv.Start)
		end, okEnd := parseClock(iv.End)
		if !okStart || !okEnd {
			continue
		}
		if start <= clock && clock <= end {
			return true
		}
	}
	return false
}

// FormatWeek renders a specification as seven display lines, week order,
// e.g. "Lun : 09:00-12:00, 14:00-17:00" or "Mar : fermé". Malformed input
// renders as closed every day.
func FormatWeek(hoursJSON string) []string {
	week, ok := ParseWeek(hoursJSON)
	out := make([]string, 0, len(model.WeekdayLabels))
	for _, label := range model.WeekdayLabels {
		day := week.Day(label)
		if !ok || !day.Open || len(day.Intervals) == 0 {
			out = append(out, label+" : fermé")
			continue
		}
		spans := make([]string, 0, len(day.Intervals))
		for _, iv := range day.Intervals {
			spans = append(spans, iv.Start+"-"+iv.End)
		}
		out = append(out, label+" : "+strings.Join(spans, ", "))
	}
	return out
}
