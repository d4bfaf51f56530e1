// Package saved provides the saved-recipes store: a deduplicated, ordered
// collection of bookmarked recipes persisted to a storage backend after every
// mutation.
package saved

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	cberrors "github.com/dbmrq/cookbook/internal/errors"
	"github.com/dbmrq/cookbook/internal/logging"
	"github.com/dbmrq/cookbook/internal/recipe"
	"github.com/dbmrq/cookbook/internal/storage"
)

// DefaultKey is the storage key holding the serialized collection.
const DefaultKey = "recipes"

// EventKind identifies what changed in the store.
type EventKind string

const (
	// EventAdded is sent after a recipe was appended.
	EventAdded EventKind = "added"
	// EventRemoved is sent after a recipe was removed.
	EventRemoved EventKind = "removed"
	// EventReloaded is sent after the collection was (re)loaded from storage.
	EventReloaded EventKind = "reloaded"
)

// Event describes a change to the collection.
type Event struct {
	Kind   EventKind
	Recipe recipe.Recipe
	Count  int
}

// Store is the saved-recipes collection.
// The zero value is not usable; create one with New.
type Store struct {
	backend storage.Backend
	key     string
	logger  *logging.Logger

	mu          sync.RWMutex
	recipes     []recipe.Recipe
	lastData    []byte
	subscribers []func(Event)
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for load and persistence warnings.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Store on top of backend. Call Load before use.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     DefaultKey,
		logger:  logging.Global(),
		recipes: []recipe.Recipe{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key.
func (s *Store) Key() string {
	return s.key
}

// Load reads the persisted collection. A missing entry, an unreadable backend
// or malformed data all yield an empty collection; Load never fails.
func (s *Store) Load(ctx context.Context) {
	data, err := s.backend.Get(ctx, s.key)
	recipes := []recipe.Recipe{}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.logger.Debug("no saved recipes yet", "key", s.key)
	case err != nil:
		s.logger.Warn("starting with no saved recipes", "error", cberrors.StorageReadFailed(s.key, err))
	default:
		parsed, perr := decode(data)
		if perr != nil {
			s.logger.Warn("malformed saved recipes, starting empty", "key", s.key, "error", perr)
		} else {
			recipes = parsed
		}
	}

	s.mu.Lock()
	s.recipes = recipes
	s.lastData = data
	count := len(recipes)
	s.mu.Unlock()

	s.logger.Info("loaded saved recipes", "count", count)
	s.notify(Event{Kind: EventReloaded, Count: count})
}

// Reload re-reads storage after an external write. Unlike Load it keeps the
// current collection when the stored data is unreadable or malformed, and it
// does nothing when the stored bytes match what this store last wrote or read.
// It reports whether the collection changed.
func (s *Store) Reload(ctx context.Context) bool {
	data, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		data = nil
	} else if err != nil {
		s.logger.Warn("failed to reload saved recipes", "key", s.key, "error", err)
		return false
	}

	s.mu.Lock()
	if bytes.Equal(data, s.lastData) {
		s.mu.Unlock()
		return false
	}

	recipes := []recipe.Recipe{}
	if data != nil {
		parsed, perr := decode(data)
		if perr != nil {
			s.mu.Unlock()
			s.logger.Warn("ignoring malformed saved recipes written externally", "key", s.key, "error", perr)
			return false
		}
		recipes = parsed
	}
	s.recipes = recipes
	s.lastData = data
	count := len(recipes)
	s.mu.Unlock()

	s.logger.Info("reloaded saved recipes", "count", count)
	s.notify(Event{Kind: EventReloaded, Count: count})
	return true
}

// Add appends r unless a recipe with the same id is already saved.
// It reports whether the collection changed. A non-nil error is a persistence
// warning (kind ErrStorage): the recipe stays saved in memory.
func (s *Store) Add(ctx context.Context, r recipe.Recipe) (bool, error) {
	s.mu.Lock()
	if indexOf(s.recipes, r.ID) >= 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.recipes = append(s.recipes, r.Clone())
	err := s.persistLocked(ctx)
	count := len(s.recipes)
	s.mu.Unlock()

	s.logger.WithContext(logging.WithRecipeID(ctx, r.ID)).Info("saved recipe", "name", r.Name)
	s.notify(Event{Kind: EventAdded, Recipe: r, Count: count})
	return true, err
}

// Remove deletes the recipe with r's id. It reports whether the collection
// changed; errors are persistence warnings as for Add.
func (s *Store) Remove(ctx context.Context, r recipe.Recipe) (bool, error) {
	s.mu.Lock()
	i := indexOf(s.recipes, r.ID)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.recipes = append(s.recipes[:i:i], s.recipes[i+1:]...)
	err := s.persistLocked(ctx)
	count := len(s.recipes)
	s.mu.Unlock()

	s.logger.WithContext(logging.WithRecipeID(ctx, r.ID)).Info("removed saved recipe", "name", r.Name)
	s.notify(Event{Kind: EventRemoved, Recipe: r, Count: count})
	return true, err
}

// Toggle removes r if it is saved and adds it otherwise.
// It returns whether r is saved afterwards.
func (s *Store) Toggle(ctx context.Context, r recipe.Recipe) (bool, error) {
	if s.Contains(r) {
		_, err := s.Remove(ctx, r)
		return false, err
	}
	_, err := s.Add(ctx, r)
	return true, err
}

// Contains reports whether a recipe with r's id is saved.
func (s *Store) Contains(r recipe.Recipe) bool {
	return s.ContainsID(r.ID)
}

// ContainsID reports whether a recipe with the given id is saved.
func (s *Store) ContainsID(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.recipes, id) >= 0
}

// Recipes returns a copy of the collection in insertion order.
func (s *Store) Recipes() []recipe.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return recipe.CloneAll(s.recipes)
}

// Len returns the number of saved recipes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// Subscribe registers fn to be called after every change.
// Callbacks run on the goroutine that made the change, outside the store lock.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(e Event) {
	s.mu.RLock()
	subs := make([]func(Event), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(e)
	}
}

// persistLocked writes the full collection. Caller holds s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.recipes)
	if err != nil {
		return cberrors.StorageWriteFailed(s.key, err)
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		s.logger.Warn("failed to persist saved recipes", "key", s.key, "error", err)
		return cberrors.StorageWriteFailed(s.key, err)
	}
	s.lastData = data
	return nil
}

// decode parses a serialized collection, dropping later duplicates of an id.
func decode(data []byte) ([]recipe.Recipe, error) {
	var parsed []recipe.Recipe
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	out := make([]recipe.Recipe, 0, len(parsed))
	seen := make(map[int]bool, len(parsed))
	for _, r := range parsed {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out, nil
}

func indexOf(recipes []recipe.Recipe, id int) int {
	for i, r := range recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}
