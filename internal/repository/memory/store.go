package memory

import (
	"context"
	"sort"
	"sync"

	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/types"
)

// FilterFunc reports whether an item matches the filter
type FilterFunc[T any] func(ctx context.Context, item T) bool

// SortFunc is a less function used to order listings
type SortFunc[T any] func(i, j T) bool

// Store is a generic mutex-guarded in-memory store keyed by ID
type Store[T any] struct {
	mu     sync.RWMutex
	entity string
	items  map[string]T
}

// NewStore creates an empty store. entity names the stored kind in error hints.
func NewStore[T any](entity string) *Store[T] {
	return &Store[T]{
		entity: entity,
		items:  make(map[string]T),
	}
}

// Create adds a new item to the store
func (s *Store[T]) Create(_ context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ierr.NewErrorf("%s already exists", s.entity).
			WithHintf("A %s with ID %s already exists", s.entity, id).
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrAlreadyExists)
	}

	s.items[id] = item
	return nil
}

// Get retrieves an item by ID
func (s *Store[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item, exists := s.items[id]; exists {
		return item, nil
	}

	var zero T
	return zero, ierr.NewErrorf("%s not found", s.entity).
		WithHintf("No %s with ID %s", s.entity, id).
		WithReportableDetails(map[string]any{"id": id}).
		Mark(ierr.ErrNotFound)
}

// List returns matching items ordered by sortFn and paged by page
func (s *Store[T]) List(ctx context.Context, page *types.QueryFilter, filterFn FilterFunc[T], sortFn SortFunc[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if filterFn == nil || filterFn(ctx, item) {
			result = append(result, item)
		}
	}

	if sortFn != nil {
		sort.Slice(result, func(i, j int) bool {
			return sortFn(result[i], result[j])
		})
	}

	if page.IsUnlimited() {
		return result
	}

	start := page.GetOffset()
	if start >= len(result) {
		return []T{}
	}
	end := min(start+page.GetLimit(), len(result))
	return result[start:end]
}

// Clear removes all items from the store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
}
