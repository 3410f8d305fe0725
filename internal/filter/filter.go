// Package filter narrows record collections with AND-composed attribute
// predicates. Every predicate is optional; a zero/wildcard value leaves the
// corresponding attribute unfiltered.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/schedule"
)

// PlaceFilter holds the predicate parameters for place queries. Nil pointers
// and empty strings are wildcards; MinSatisfaction 0 matches everything.
type PlaceFilter struct {
	Location        string
	RainOK          *bool
	MinDuration     *int
	MaxDuration     *int
	Parking         string
	MinSatisfaction int
	OpenNow         bool
}

// EventFilter is the event counterpart; ActiveNow delegates to the window
// check instead of the weekly schedule.
type EventFilter struct {
	Location        string
	RainOK          *bool
	MinDuration     *int
	MaxDuration     *int
	Parking         string
	MinSatisfaction int
	ActiveNow       bool
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Places returns the subset of in satisfying every set predicate, ordered by
// descending satisfaction then ascending duration. Records with malformed
// hours data simply fail the OpenNow predicate; they never abort the query.
func Places(in []model.Place, f PlaceFilter, now time.Time) []model.Place {
	out := make([]model.Place, 0, len(in))
	for _, p := range in {
		if f.Location != "" && !containsFold(p.Location, f.Location) {
			continue
		}
		if f.RainOK != nil && p.RainOK != *f.RainOK {
			continue
		}
		if f.MinDuration != nil && p.DurationMin < *f.MinDuration {
			continue
		}
		if f.MaxDuration != nil && p.DurationMin > *f.MaxDuration {
			continue
		}
		if f.Parking != "" && p.Parking != f.Parking {
			continue
		}
		if p.Satisfaction < f.MinSatisfaction {
			continue
		}
		if f.OpenNow && !schedule.OpenAt(p.HoursJSON, now) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Satisfaction != out[j].Satisfaction {
			return out[i].Satisfaction > out[j].Satisfaction
		}
		return out[i].DurationMin < out[j].DurationMin
	})
	return out
}

// Events returns the subset of in satisfying every set predicate, ordered by
// ascending start timestamp. The canonical ISO-8601 form with a fixed offset
// makes the lexicographic comparison order-preserving.
func Events(in []model.Event, f EventFilter, now time.Time) []model.Event {
	out := make([]model.Event, 0, len(in))
	for _, e := range in {
		if f.Location != "" && !containsFold(e.Location, f.Location) {
			continue
		}
		if f.RainOK != nil && e.RainOK != *f.RainOK {
			continue
		}
		if f.MinDuration != nil && e.DurationMin < *f.MinDuration {
			continue
		}
		if f.MaxDuration != nil && e.DurationMin > *f.MaxDuration {
			continue
		}
		if f.Parking != "" && e.Parking != f.Parking {
			continue
		}
		if e.Satisfaction < f.MinSatisfaction {
			continue
		}
		if f.ActiveNow && !schedule.WithinWindow(e.StartDT, e.EndDT, now) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDT < out[j].StartDT
	})
	return out
}
