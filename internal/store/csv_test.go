package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
)

func TestCSVStoreMissingFilesReadEmpty(t *testing.T) {
	s := NewCSVStore(t.TempDir())

	places, err := s.ListPlaces()
	assert.NoError(t, err)
	assert.Empty(t, places)

	events, err := s.ListEvents()
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestCSVStorePlaceRoundTrip(t *testing.T) {
	s := NewCSVStore(t.TempDir())
	p := model.Place{
		ID:           "zoo-de-zurich-1751875200",
		Name:         "Zoo de Zurich",
		Location:     "Zurich",
		RainOK:       true,
		DurationMin:  180,
		Parking:      model.ParkingMoyen,
		Satisfaction: 4,
		HoursJSON:    `{"Lun":{"open":true,"intervals":[{"start":"09:00","end":"12:00"}]}}`,
		ImagePath:    "uploads/zoo.png",
		Notes:        "Prendre le train, c'est plus simple",
	}

	assert.NoError(t, s.InsertPlace(p))

	places, err := s.ListPlaces()
	assert.NoError(t, err)
	assert.Equal(t, []model.Place{p}, places)
}

func TestCSVStoreEventRoundTrip(t *testing.T) {
	s := NewCSVStore(t.TempDir())
	e := model.Event{
		ID:           "fete-du-village-1751875200",
		Title:        "Fête du village",
		Location:     "Vevey",
		DurationMin:  120,
		Parking:      model.ParkingDifficile,
		Satisfaction: 3,
		StartDT:      "2025-07-10T09:00:00+02:00",
		EndDT:        "2025-07-10T18:00:00+02:00",
	}

	assert.NoError(t, s.InsertEvent(e))

	events, err := s.ListEvents()
	assert.NoError(t, err)
	assert.Equal(t, []model.Event{e}, events)
}

func TestCSVStoreInsertKeepsExistingRows(t *testing.T) {
	s := NewCSVStore(t.TempDir())
	assert.NoError(t, s.InsertPlace(model.Place{ID: "un", Name: "Un"}))
	assert.NoError(t, s.InsertPlace(model.Place{ID: "deux", Name: "Deux"}))

	places, err := s.ListPlaces()
	assert.NoError(t, err)
	assert.Len(t, places, 2)
	assert.Equal(t, "un", places[0].ID)
	assert.Equal(t, "deux", places[1].ID)
}

func TestCSVStoreMalformedFileReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewCSVStore(dir)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "places.csv"), []byte("\"unclosed quote\nid,name\n"), 0644))

	places, err := s.ListPlaces()
	assert.NoError(t, err)
	assert.Empty(t, places)
}

func TestCSVStoreCoercesBadCells(t *testing.T) {
	dir := t.TempDir()
	s := NewCSVStore(dir)
	raw := "id,name,location,rain_ok,duration_min,parking,satisfaction,hours_json,image_path,notes\n" +
		"x,Le X,Berne,peut-être,beaucoup,Moyen,cinq,,,\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "places.csv"), []byte(raw), 0644))

	places, err := s.ListPlaces()
	assert.NoError(t, err)
	assert.Len(t, places, 1)
	assert.False(t, places[0].RainOK)
	assert.Zero(t, places[0].DurationMin)
	assert.Zero(t, places[0].Satisfaction)
}
