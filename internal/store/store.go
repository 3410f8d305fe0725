// Package store is the persistence collaborator for the catalog: a flat-file
// CSV tier, an optional Postgres tier, and a two-tier fallback wrapper that
// serves the local tier whenever the remote one fails.
package store

import "github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"

// Store supplies record collections and accepts new records. Both record
// collections are owned exclusively by the store; callers get transient
// read-only views.
type Store interface {
	ListPlaces() ([]model.Place, error)
	InsertPlace(p model.Place) error
	ListEvents() ([]model.Event, error)
	InsertEvent(e model.Event) error
}
