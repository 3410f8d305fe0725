package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/schedule"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

// 2025-07-07 11:30 is a Monday morning in Zurich.
var mondayNoonish = time.Date(2025, 7, 7, 11, 30, 0, 0, schedule.AppZone)

const mondayMorning = `{"Lun":{"open":true,"intervals":[{"start":"09:00","end":"12:00"}]}}`

func placesFixture() []model.Place {
	return []model.Place{
		{ID: "zoo", Name: "Zoo de Zurich", Location: "Zurich", RainOK: false, DurationMin: 180, Parking: model.ParkingMoyen, Satisfaction: 4, HoursJSON: mondayMorning},
		{ID: "musee", Name: "Musée des transports", Location: "Lucerne", RainOK: true, DurationMin: 120, Parking: model.ParkingFacile, Satisfaction: 5, HoursJSON: "pas un json"},
		{ID: "piscine", Name: "Piscine couverte", Location: "Berne", RainOK: true, DurationMin: 90, Parking: model.ParkingDifficile, Satisfaction: 2, HoursJSON: ""},
	}
}

func ids(places []model.Place) []string {
	out := make([]string, len(places))
	for i, p := range places {
		out[i] = p.ID
	}
	return out
}

func TestPlacesWildcardKeepsMembership(t *testing.T) {
	in := placesFixture()
	out := Places(in, PlaceFilter{}, mondayNoonish)
	assert.Len(t, out, len(in))
	// ordering: satisfaction desc, duration asc
	assert.Equal(t, []string{"musee", "zoo", "piscine"}, ids(out))
}

func TestPlacesMinSatisfaction(t *testing.T) {
	out := Places(placesFixture(), PlaceFilter{MinSatisfaction: 4}, mondayNoonish)
	assert.Equal(t, []string{"musee", "zoo"}, ids(out))
}

func TestPlacesOrderingBreaksTiesByDuration(t *testing.T) {
	in := []model.Place{
		{ID: "long", Satisfaction: 3, DurationMin: 240},
		{ID: "short", Satisfaction: 3, DurationMin: 30},
		{ID: "top", Satisfaction: 5, DurationMin: 300},
	}
	out := Places(in, PlaceFilter{}, mondayNoonish)
	assert.Equal(t, []string{"top", "short", "long"}, ids(out))
}

func TestPlacesLocationMatchIsCaseInsensitive(t *testing.T) {
	out := Places(placesFixture(), PlaceFilter{Location: "zUrIcH"}, mondayNoonish)
	assert.Equal(t, []string{"zoo"}, ids(out))
}

func TestPlacesRainParkingAndDuration(t *testing.T) {
	out := Places(placesFixture(), PlaceFilter{RainOK: boolPtr(true)}, mondayNoonish)
	assert.Equal(t, []string{"musee", "piscine"}, ids(out))

	out = Places(placesFixture(), PlaceFilter{Parking: model.ParkingFacile}, mondayNoonish)
	assert.Equal(t, []string{"musee"}, ids(out))

	// duration bounds are inclusive
	out = Places(placesFixture(), PlaceFilter{MinDuration: intPtr(90), MaxDuration: intPtr(120)}, mondayNoonish)
	assert.Equal(t, []string{"musee", "piscine"}, ids(out))
}

func TestPlacesOpenNowTreatsMalformedHoursAsClosed(t *testing.T) {
	out := Places(placesFixture(), PlaceFilter{OpenNow: true}, mondayNoonish)
	assert.Equal(t, []string{"zoo"}, ids(out))
}

func TestPlacesCombinedFiltersAreIntersection(t *testing.T) {
	in := placesFixture()
	rainOnly := Places(in, PlaceFilter{RainOK: boolPtr(true)}, mondayNoonish)
	satOnly := Places(in, PlaceFilter{MinSatisfaction: 4}, mondayNoonish)
	both := Places(in, PlaceFilter{RainOK: boolPtr(true), MinSatisfaction: 4}, mondayNoonish)

	members := map[string]bool{}
	for _, p := range rainOnly {
		members[p.ID] = true
	}
	var want []string
	for _, p := range satOnly {
		if members[p.ID] {
			want = append(want, p.ID)
		}
	}
	assert.ElementsMatch(t, want, ids(both))
}

func TestPlacesZeroValuesAreFilterable(t *testing.T) {
	// a record with absent attributes behaves as false/0/"" rather than erroring
	in := []model.Place{{ID: "vide"}}
	assert.Len(t, Places(in, PlaceFilter{RainOK: boolPtr(false)}, mondayNoonish), 1)
	assert.Len(t, Places(in, PlaceFilter{RainOK: boolPtr(true)}, mondayNoonish), 0)
	assert.Len(t, Places(in, PlaceFilter{MinSatisfaction: 1}, mondayNoonish), 0)
}

func eventsFixture() []model.Event {
	return []model.Event{
		{ID: "fete", Title: "Fête du village", Location: "Vevey", Satisfaction: 3,
			StartDT: "2025-07-10T09:00:00+02:00", EndDT: "2025-07-10T18:00:00+02:00"},
		{ID: "cirque", Title: "Cirque Knie", Location: "Zurich", Satisfaction: 5,
			StartDT: "2025-07-07T10:00:00+02:00", EndDT: "2025-07-07T20:00:00+02:00"},
		{ID: "casse", Title: "Sans dates", Location: "Berne", Satisfaction: 4,
			StartDT: "invalide", EndDT: ""},
	}
}

func TestEventsOrderedByStart(t *testing.T) {
	out := Events(eventsFixture(), EventFilter{}, mondayNoonish)
	assert.Len(t, out, 3)
	// lexicographic on the canonical ISO-8601 representation
	assert.Equal(t, "cirque", out[0].ID)
	assert.Equal(t, "fete", out[1].ID)
	assert.Equal(t, "casse", out[2].ID)
}

func TestEventsActiveNow(t *testing.T) {
	out := Events(eventsFixture(), EventFilter{ActiveNow: true}, mondayNoonish)
	assert.Len(t, out, 1)
	assert.Equal(t, "cirque", out[0].ID)
}

func TestEventsWildcardKeepsMembership(t *testing.T) {
	in := eventsFixture()
	out := Events(in, EventFilter{}, mondayNoonish)
	assert.Len(t, out, len(in))
}
