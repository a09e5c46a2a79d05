// Package store provides the cached word store: a read cache with a fixed
// freshness window sitting in front of the word repository, invalidated
// wholesale on every write.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/signsetu/signsetu/internal/entities"
)

// DefaultFreshness is how long cached content is trusted before it must be
// refreshed from the repository.
const DefaultFreshness = 5 * time.Minute

// Repository defines the persistence operations the cached store depends on.
// Implemented by words.Repository.
type Repository interface {
	Create(word *entities.Word) error
	All() ([]entities.Word, error)
	ByID(id uint) (*entities.Word, error)
	Search(query string) ([]entities.Word, error)
	Update(id uint, updates map[string]any) (*entities.Word, error)
	Delete(id uint) (bool, error)
	Related(word *entities.Word, limit int) ([]entities.Word, error)
}

// CachedWordStore serves word queries from an in-process cache when fresh
// and guarantees read-after-write consistency by dropping the entire cache
// on any create, update or delete.
//
// The all-words snapshot and the per-ID entries share a single freshness
// timestamp, set when either is first populated after an invalidation. A
// mutex makes each operation atomic with respect to concurrent requests:
// no caller can observe a partially invalidated cache.
type CachedWordStore struct {
	repo      Repository
	freshness time.Duration
	now       func() time.Time

	mu       sync.Mutex
	allWords []entities.Word
	hasAll   bool
	byID     map[uint]entities.Word
	stamp    time.Time
}

// New creates a cached word store. A freshness of 0 selects
// DefaultFreshness.
func New(repo Repository, freshness time.Duration) *CachedWordStore {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return &CachedWordStore{
		repo:      repo,
		freshness: freshness,
		now:       time.Now,
		byID:      make(map[uint]entities.Word),
	}
}

// WithClock replaces the wall clock, for tests.
func (s *CachedWordStore) WithClock(now func() time.Time) *CachedWordStore {
	s.now = now
	return s
}

// invalidateLocked drops the snapshot and every per-ID entry together.
func (s *CachedWordStore) invalidateLocked() {
	s.allWords = nil
	s.hasAll = false
	s.byID = make(map[uint]entities.Word)
	s.stamp = time.Time{}
}

// expireLocked treats content older than the freshness window as absent.
func (s *CachedWordStore) expireLocked() {
	if !s.stamp.IsZero() && s.now().Sub(s.stamp) >= s.freshness {
		s.invalidateLocked()
	}
}

// stampLocked records the population time if this is the first population
// since the last invalidation.
func (s *CachedWordStore) stampLocked() {
	if s.stamp.IsZero() {
		s.stamp = s.now()
	}
}

// ListAll returns all words, serving the cached snapshot when it is fresh.
func (s *CachedWordStore) ListAll() ([]entities.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	if s.hasAll {
		return append([]entities.Word(nil), s.allWords...), nil
	}

	all, err := s.repo.All()
	if err != nil {
		return nil, translateReadError(err)
	}
	s.allWords = all
	s.hasAll = true
	s.stampLocked()
	return append([]entities.Word(nil), all...), nil
}

// Search queries the repository directly; the cache is never consulted or
// populated. An empty result is not an error.
func (s *CachedWordStore) Search(query string) ([]entities.Word, error) {
	found, err := s.repo.Search(query)
	if err != nil {
		return nil, translateReadError(err)
	}
	return found, nil
}

// GetByID returns a single word, serving a fresh per-ID cache entry when one
// exists. Found records are cached; absence never is.
func (s *CachedWordStore) GetByID(id uint) (*entities.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	if cached, ok := s.byID[id]; ok {
		word := cached
		return &word, nil
	}

	word, err := s.repo.ByID(id)
	if err != nil {
		return nil, translateReadError(err)
	}
	s.byID[id] = *word
	s.stampLocked()
	return word, nil
}

// Related returns words related to the given ID. Like Search, this path
// always bypasses the cache.
func (s *CachedWordStore) Related(id uint, limit int) ([]entities.Word, error) {
	word, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	related, err := s.repo.Related(word, limit)
	if err != nil {
		return nil, translateReadError(err)
	}
	return related, nil
}

// Create validates and inserts a word, then invalidates the entire cache.
// A rejected write (validation failure, duplicate word) leaves the cache
// untouched.
func (s *CachedWordStore) Create(word *entities.Word) error {
	if err := validateRequired(word); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Create(word); err != nil {
		return translateWriteError(err)
	}
	s.invalidateLocked()
	return nil
}

// Update applies a partial update and invalidates the entire cache on
// success.
func (s *CachedWordStore) Update(id uint, updates map[string]any) (*entities.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	word, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, translateWriteError(err)
	}
	s.invalidateLocked()
	return word, nil
}

// Delete removes a word and invalidates the entire cache on success.
func (s *CachedWordStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.repo.Delete(id)
	if err != nil {
		return translateReadError(err)
	}
	if !found {
		return ErrNotFound
	}
	s.invalidateLocked()
	return nil
}

func validateRequired(word *entities.Word) error {
	switch {
	case strings.TrimSpace(word.Word) == "":
		return &ValidationError{Message: "word is required"}
	case strings.TrimSpace(word.Definition) == "":
		return &ValidationError{Message: "definition is required"}
	case strings.TrimSpace(word.ImageURL) == "":
		return &ValidationError{Message: "image_url is required"}
	case strings.TrimSpace(word.VideoURL) == "":
		return &ValidationError{Message: "video_url is required"}
	}
	return nil
}
