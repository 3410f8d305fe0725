package store

import (
	"github.com/rs/zerolog/log"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
)

// FallbackStore serves the remote tier and degrades to the local tier on any
// remote failure. Each fallback decision is logged with its trigger so the
// chain stays observable.
type FallbackStore struct {
	remote Store
	local  Store
}

var _ Store = (*FallbackStore)(nil)

func NewFallbackStore(remote, local Store) *FallbackStore {
	return &FallbackStore{remote: remote, local: local}
}

func (s *FallbackStore) ListPlaces() ([]model.Place, error) {
	out, err := s.remote.ListPlaces()
	if err != nil {
		log.Warn().Err(err).Msg("remote place fetch failed, serving local tier")
		return s.local.ListPlaces()
	}
	return out, nil
}

func (s *FallbackStore) InsertPlace(p model.Place) error {
	if err := s.remote.InsertPlace(p); err != nil {
		log.Warn().Err(err).Str("id", p.ID).Msg("remote place insert failed, writing local tier")
		return s.local.InsertPlace(p)
	}
	return nil
}

func (s *FallbackStore) ListEvents() ([]model.Event, error) {
	out, err := s.remote.ListEvents()
	if err != nil {
		log.Warn().Err(err).Msg("remote event fetch failed, serving local tier")
		return s.local.ListEvents()
	}
	return out, nil
}

func (s *FallbackStore) InsertEvent(e model.Event) error {
	if err := s.remote.InsertEvent(e); err != nil {
		log.Warn().Err(err).Str("id", e.ID).Msg("remote event insert failed, writing local tier")
		return s.local.InsertEvent(e)
	}
	return nil
}
