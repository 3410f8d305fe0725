package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
)

// brokenStore fails every call, standing in for an unreachable remote tier.
type brokenStore struct{}

var errUnreachable = errors.New("remote unreachable")

func (brokenStore) ListPlaces() ([]model.Place, error) { return nil, errUnreachable }
func (brokenStore) InsertPlace(model.Place) error      { return errUnreachable }
func (brokenStore) ListEvents() ([]model.Event, error) { return nil, errUnreachable }
func (brokenStore) InsertEvent(model.Event) error      { return errUnreachable }

func TestFallbackStoreServesLocalOnRemoteFailure(t *testing.T) {
	local := NewCSVStore(t.TempDir())
	assert.NoError(t, local.InsertPlace(model.Place{ID: "local-place", Name: "Local"}))

	s := NewFallbackStore(brokenStore{}, local)

	places, err := s.ListPlaces()
	assert.NoError(t, err)
	assert.Len(t, places, 1)
	assert.Equal(t, "local-place", places[0].ID)
}

func TestFallbackStoreWritesLocalOnRemoteFailure(t *testing.T) {
	local := NewCSVStore(t.TempDir())
	s := NewFallbackStore(brokenStore{}, local)

	assert.NoError(t, s.InsertEvent(model.Event{ID: "local-event", Title: "Local"}))

	events, err := local.ListEvents()
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "local-event", events[0].ID)
}

func TestFallbackStorePrefersRemote(t *testing.T) {
	remote := NewCSVStore(t.TempDir())
	assert.NoError(t, remote.InsertPlace(model.Place{ID: "remote-place"}))
	local := NewCSVStore(t.TempDir())

	s := NewFallbackStore(remote, local)

	places, err := s.ListPlaces()
	assert.NoError(t, err)
	assert.Len(t, places, 1)
	assert.Equal(t, "remote-place", places[0].ID)
}
