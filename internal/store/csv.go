package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
)

var placeCols = []string{
	"id", "name", "location", "rain_ok", "duration_min",
	"parking", "satisfaction", "hours_json", "image_path", "notes",
}

var eventCols = []string{
	"id", "title", "location", "rain_ok", "duration_min",
	"parking", "satisfaction", "start_dt", "end_dt", "image_path", "notes",
}

// CSVStore persists records to places.csv and events.csv under one data
// directory. A missing or unreadable file reads as an empty collection, so
// the filter path always receives a valid input. Inserts rewrite the whole
// file; concurrent writers are not coordinated.
type CSVStore struct {
	dir string
}

var _ Store = (*CSVStore)(nil)

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{dir: dir}
}

func (s *CSVStore) placesPath() string { return filepath.Join(s.dir, "places.csv") }
func (s *CSVStore) eventsPath() string { return filepath.Join(s.dir, "events.csv") }

// readRows loads a CSV file into header-keyed maps. Any failure degrades to
// an empty result, mirroring how absent data is handled everywhere else.
func readRows(path string) []map[string]string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("unreadable csv file, treating as empty")
		return nil
	}
	if len(records) < 2 {
		return nil
	}
	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Missing or malformed cells coerce to their type's zero value.
func cellInt(row map[string]string, col string) int {
	n, err := strconv.Atoi(row[col])
	if err != nil {
		return 0
	}
	return n
}

func cellBool(row map[string]string, col string) bool {
	b, err := strconv.ParseBool(row[col])
	if err != nil {
		return false
	}
	return b
}

func (s *CSVStore) ListPlaces() ([]model.Place, error) {
	rows := readRows(s.placesPath())
	out := make([]model.Place, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Place{
			ID:           row["id"],
			Name:         row["name"],
			Location:     row["location"],
			RainOK:       cellBool(row, "rain_ok"),
			DurationMin:  cellInt(row, "duration_min"),
			Parking:      row["parking"],
			Satisfaction: cellInt(row, "satisfaction"),
			HoursJSON:    row["hours_json"],
			ImagePath:    row["image_path"],
			Notes:        row["notes"],
		})
	}
	return out, nil
}

func (s *CSVStore) ListEvents() ([]model.Event, error) {
	rows := readRows(s.eventsPath())
	out := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Event{
			ID:           row["id"],
			Title:        row["title"],
			Location:     row["location"],
			RainOK:       cellBool(row, "rain_ok"),
			DurationMin:  cellInt(row, "duration_min"),
			Parking:      row["parking"],
			Satisfaction: cellInt(row, "satisfaction"),
			StartDT:      row["start_dt"],
			EndDT:        row["end_dt"],
			ImagePath:    row["image_path"],
			Notes:        row["notes"],
		})
	}
	return out, nil
}

func (s *CSVStore) writeAll(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func placeRow(p model.Place) []string {
	return []string{
		p.ID, p.Name, p.Location,
		strconv.FormatBool(p.RainOK), strconv.Itoa(p.DurationMin),
		p.Parking, strconv.Itoa(p.Satisfaction),
		p.HoursJSON, p.ImagePath, p.Notes,
	}
}

func eventRow(e model.Event) []string {
	return []string{
		e.ID, e.Title, e.Location,
		strconv.FormatBool(e.RainOK), strconv.Itoa(e.DurationMin),
		e.Parking, strconv.Itoa(e.Satisfaction),
		e.StartDT, e.EndDT, e.ImagePath, e.Notes,
	}
}

func (s *CSVStore) InsertPlace(p model.Place) error {
	existing, _ := s.ListPlaces()
	rows := make([][]string, 0, len(existing)+1)
	for _, x := range existing {
		rows = append(rows, placeRow(x))
	}
	rows = append(rows, placeRow(p))
	return s.writeAll(s.placesPath(), placeCols, rows)
}

func (s *CSVStore) InsertEvent(e model.Event) error {
	existing, _ := s.ListEvents()
	rows := make([][]string, 0, len(existing)+1)
	for _, x := range existing {
		rows = append(rows, eventRow(x))
	}
	rows = append(rows, eventRow(e))
	return s.writeAll(s.eventsPath(), eventCols, rows)
}
