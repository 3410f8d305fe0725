package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
)

// PGStore is the hosted table-store tier, one row per record, no
// multi-record transactions.
type PGStore struct {
	db *sqlx.DB
}

var _ Store = (*PGStore)(nil)

// NewPGStore opens the Postgres connection. Callers fall back to the local
// tier when this fails.
func NewPGStore(databaseURL string) (*PGStore, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	log.Info().Msg("connected to database")
	return &PGStore{db: db}, nil
}

// RunMigrations finds all "*.up.sql" files in migrationsPath, sorted by
// name, and executes their contents in order.
func (s *PGStore) RunMigrations(migrationsPath string) error {
	pattern := filepath.Join(migrationsPath, "*.up.sql")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("failed to glob migrations: %w", err)
	}
	if len(files) == 0 {
		return nil
	}
	sort.Strings(files)

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read migration %q: %w", file, err)
		}
		if len(sqlBytes) == 0 {
			continue
		}
		if _, err := s.db.Exec(string(sqlBytes)); err != nil {
			return fmt.Errorf("error executing migration %q: %w", file, err)
		}
	}
	return nil
}

func (s *PGStore) ListPlaces() ([]model.Place, error) {
	var out []model.Place
	const q = `
	SELECT id, name, location, rain_ok, duration_min,
	       parking, satisfaction, hours_json, image_path, notes
	  FROM places
	 ORDER BY id;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListPlaces failed")
		return nil, err
	}
	return out, nil
}

func (s *PGStore) InsertPlace(p model.Place) error {
	const q = `
	INSERT INTO places
	(id, name, location, rain_ok, duration_min, parking, satisfaction, hours_json, image_path, notes)
	VALUES
	($1, $2,   $3,       $4,      $5,           $6,      $7,           $8,         $9,         $10);`
	_, err := s.db.Exec(q,
		p.ID, p.Name, p.Location, p.RainOK, p.DurationMin,
		p.Parking, p.Satisfaction, p.HoursJSON, p.ImagePath, p.Notes,
	)
	if err != nil {
		log.Error().Err(err).Str("id", p.ID).Msg("InsertPlace failed")
	}
	return err
}

func (s *PGStore) ListEvents() ([]model.Event, error) {
	var out []model.Event
	const q = `
	SELECT id, title, location, rain_ok, duration_min,
	       parking, satisfaction, start_dt, end_dt, image_path, notes
	  FROM events
	 ORDER BY id;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListEvents failed")
		return nil, err
	}
	return out, nil
}

func (s *PGStore) InsertEvent(e model.Event) error {
	const q = `
	INSERT INTO events
	(id, title, location, rain_ok, duration_min, parking, satisfaction, start_dt, end_dt, image_path, notes)
	VALUES
	($1, $2,    $3,       $4,      $5,           $6,      $7,           $8,       $9,     $10,        $11);`
	_, err := s.db.Exec(q,
		e.ID, e.Title, e.Location, e.RainOK, e.DurationMin,
		e.Parking, e.Satisfaction, e.StartDT, e.EndDT, e.ImagePath, e.Notes,
	)
	if err != nil {
		log.Error().Err(err).Str("id", e.ID).Msg("InsertEvent failed")
	}
	return err
}
