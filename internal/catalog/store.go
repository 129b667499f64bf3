package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/logger"
)

// Snapshot describes the catalog currently served by a Store
type Snapshot struct {
	Path     string    `json:"path"`
	Checksum string    `json:"checksum"`
	LoadedAt time.Time `json:"loaded_at"`
	Recipes  int       `json:"recipes"`
	Items    int       `json:"items"`
}

// ReloadResult reports what a reload did
type ReloadResult struct {
	Changed  bool   `json:"changed"`
	Checksum string `json:"checksum"`
	Recipes  int    `json:"recipes"`
	Items    int    `json:"items"`
}

// Store serves an immutable Index that can be swapped atomically by Reload.
// Closures are cached per root item and purged on every swap. Slices handed
// out by the store are shared and must not be modified.
type Store struct {
	loader Loader
	path   string

	mu       sync.RWMutex
	index    *Index
	checksum string
	loadedAt time.Time

	closures *expirable.LRU[string, []domain.Recipe]
}

// NewStore creates a store for the catalog at path. Nothing is read until
// Reload is called.
func NewStore(loader Loader, path string, cacheSize int, cacheTTL time.Duration) *Store {
	return &Store{
		loader:   loader,
		path:     path,
		closures: expirable.NewLRU[string, []domain.Recipe](cacheSize, nil, cacheTTL),
	}
}

// Reload re-reads the catalog file. An unchanged file (same SHA-256) is
// skipped. A file that fails to load leaves the current index in place.
func (s *Store) Reload(ctx context.Context) (*ReloadResult, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	s.mu.RLock()
	current, unchanged := s.index, s.checksum == checksum
	s.mu.RUnlock()
	if unchanged && current != nil {
		log.Info(LogMsgCatalogUnchanged, "path", s.path)
		return &ReloadResult{Checksum: checksum, Recipes: current.Len(), Items: len(current.Items())}, nil
	}

	ix, err := s.build(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	s.Replace(ix, checksum)

	log.Info(LogMsgCatalogLoaded, "path", s.path, "recipes", ix.Len(), "items", len(ix.Items()), "checksum", checksum)
	return &ReloadResult{Changed: true, Checksum: checksum, Recipes: ix.Len(), Items: len(ix.Items())}, nil
}

func (s *Store) build(data []byte) (*Index, error) {
	config, err := s.loader.Parse(data, FormatFromPath(s.path))
	if err != nil {
		return nil, err
	}
	if err := s.loader.Validate(config); err != nil {
		return nil, err
	}
	recipes, err := config.DomainRecipes()
	if err != nil {
		return nil, err
	}
	return NewIndex(recipes)
}

// Replace swaps in ix and drops every cached closure
func (s *Store) Replace(ix *Index, checksum string) {
	s.mu.Lock()
	s.index = ix
	s.checksum = checksum
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.closures.Purge()
}

// Ready reports whether a catalog has been loaded
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index != nil
}

func (s *Store) current() (*Index, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return nil, "", ErrNotLoaded
	}
	return s.index, s.checksum, nil
}

// Closure returns the recipe closure of root. It is empty when nothing
// produces root.
func (s *Store) Closure(ctx context.Context, root string) ([]domain.Recipe, error) {
	ix, checksum, err := s.current()
	if err != nil {
		return nil, err
	}

	// Keys carry the catalog checksum so a closure computed against a
	// replaced index is never served.
	key := checksum + closureKeySeparator + root
	if cached, ok := s.closures.Get(key); ok {
		logger.FromContext(ctx).Debug(LogMsgClosureCacheHit, "item", root, "recipes", len(cached))
		return cached, nil
	}

	closure := ix.Closure(root)
	if len(closure) > 0 {
		s.closures.Add(key, closure)
	}
	logger.FromContext(ctx).Debug(LogMsgClosureComputed, "item", root, "recipes", len(closure))
	return closure, nil
}

// Items lists produced item ids in catalog order
func (s *Store) Items(_ context.Context) ([]string, error) {
	ix, _, err := s.current()
	if err != nil {
		return nil, err
	}
	return ix.Items(), nil
}

// Creators returns the recipes producing itemID in catalog order
func (s *Store) Creators(_ context.Context, itemID string) ([]*domain.Recipe, error) {
	ix, _, err := s.current()
	if err != nil {
		return nil, err
	}
	return ix.ByItem(itemID), nil
}

// Suggest returns item ids resembling itemID
func (s *Store) Suggest(itemID string, limit int) []string {
	ix, _, err := s.current()
	if err != nil {
		return nil
	}
	return Suggest(itemID, ix.Items(), limit)
}

// Snapshot describes the loaded catalog
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Path: s.path, Checksum: s.checksum, LoadedAt: s.loadedAt}
	if s.index != nil {
		snap.Recipes = s.index.Len()
		snap.Items = len(s.index.Items())
	}
	return snap
}
