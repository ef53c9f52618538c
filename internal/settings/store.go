// Package settings implements the versioned key→document store for
// hot-reloadable engine settings. Writers append a new version per key;
// readers resolve the highest version. A short-lived cache keeps the hot
// path (the rate limiter consults the rule table on every privileged call)
// off the database.
package settings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/enginesetting"
)

// Well-known setting keys.
const (
	KeyVotingDefaultDuration = "voting.default_duration" // {"days": 5}
	KeyRateLimitRules        = "rate_limit.rules"        // {"<procedure>": {scope, allowed_per_minute, enabled}}
)

// cacheTTL bounds staleness of cached documents. Hot reload means "within a
// few seconds", not "same statement".
const cacheTTL = 5 * time.Second

// Document is a versioned settings document.
type Document struct {
	Key      string
	Version  int
	Body     map[string]interface{}
	LoadedAt time.Time
}

// Store reads and writes versioned setting documents.
type Store struct {
	client *ent.Client

	mu    sync.RWMutex
	cache map[string]Document
}

// NewStore creates a settings store.
func NewStore(client *ent.Client) *Store {
	return &Store{
		client: client,
		cache:  make(map[string]Document),
	}
}

// Get returns the latest version of the document for key. A missing key
// returns ok=false with no error so callers can fall back to defaults.
func (s *Store) Get(ctx context.Context, key string) (Document, bool, error) {
	s.mu.RLock()
	cached, hit := s.cache[key]
	s.mu.RUnlock()
	if hit && time.Since(cached.LoadedAt) < cacheTTL {
		return cached, true, nil
	}

	row, err := s.client.EngineSetting.Query().
		Where(enginesetting.KeyEQ(key)).
		Order(ent.Desc(enginesetting.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Document{}, false, nil
		}
		// Serve a stale cache entry over a hard failure.
		if hit {
			return cached, true, nil
		}
		return Document{}, false, fmt.Errorf("load setting %s: %w", key, err)
	}

	doc := Document{
		Key:      key,
		Version:  row.Version,
		Body:     row.Document,
		LoadedAt: time.Now(),
	}
	s.mu.Lock()
	s.cache[key] = doc
	s.mu.Unlock()
	return doc, true, nil
}

// Put appends a new version of the document for key and returns the version
// written. Concurrent writers race on the (key, version) unique index; the
// loser retries once against the refreshed head.
func (s *Store) Put(ctx context.Context, key string, body map[string]interface{}, updatedBy string) (int, error) {
	for attempt := 0; attempt < 2; attempt++ {
		next, err := s.nextVersion(ctx, key)
		if err != nil {
			return 0, err
		}

		_, err = s.client.EngineSetting.Create().
			SetKey(key).
			SetVersion(next).
			SetDocument(body).
			SetUpdatedBy(updatedBy).
			Save(ctx)
		if err == nil {
			s.invalidate(key)
			return next, nil
		}
		if !ent.IsConstraintError(err) {
			return 0, fmt.Errorf("write setting %s v%d: %w", key, next, err)
		}
	}
	return 0, fmt.Errorf("write setting %s: lost version race twice", key)
}

func (s *Store) nextVersion(ctx context.Context, key string) (int, error) {
	row, err := s.client.EngineSetting.Query().
		Where(enginesetting.KeyEQ(key)).
		Order(ent.Desc(enginesetting.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("resolve head version for %s: %w", key, err)
	}
	return row.Version + 1, nil
}

func (s *Store) invalidate(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
}
