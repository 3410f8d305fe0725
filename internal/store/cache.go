package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
)

const (
	cachePlacesKey = "catalog:places"
	cacheEventsKey = "catalog:events"
	cacheTTL       = 30 * time.Second
)

// CachedStore keeps list results in Redis for a short TTL and drops the
// cached copy on insert. Redis errors only cost the cache, never the call.
type CachedStore struct {
	next Store
	rdb  *redis.Client
}

var _ Store = (*CachedStore)(nil)

func NewCachedStore(next Store, rdb *redis.Client) *CachedStore {
	return &CachedStore{next: next, rdb: rdb}
}

func cacheGet[T any](rdb *redis.Client, key string) ([]T, bool) {
	raw, err := rdb.Get(context.Background(), key).Result()
	if err != nil {
		return nil, false
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}
	return out, true
}

func cachePut[T any](rdb *redis.Client, key string, value []T) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := rdb.Set(context.Background(), key, raw, cacheTTL).Err(); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (s *CachedStore) ListPlaces() ([]model.Place, error) {
	if out, ok := cacheGet[model.Place](s.rdb, cachePlacesKey); ok {
		return out, nil
	}
	out, err := s.next.ListPlaces()
	if err != nil {
		return nil, err
	}
	cachePut(s.rdb, cachePlacesKey, out)
	return out, nil
}

func (s *CachedStore) InsertPlace(p model.Place) error {
	if err := s.next.InsertPlace(p); err != nil {
		return err
	}
	s.rdb.Del(context.Background(), cachePlacesKey)
	return nil
}

func (s *CachedStore) ListEvents() ([]model.Event, error) {
	if out, ok := cacheGet[model.Event](s.rdb, cacheEventsKey); ok {
		return out, nil
	}
	out, err := s.next.ListEvents()
	if err != nil {
		return nil, err
	}
	cachePut(s.rdb, cacheEventsKey, out)
	return out, nil
}

func (s *CachedStore) InsertEvent(e model.Event) error {
	if err := s.next.InsertEvent(e); err != nil {
		return err
	}
	s.rdb.Del(context.Background(), cacheEventsKey)
	return nil
}
