// Package memory provides in-memory repository implementations.
// They back the seed tool and service-level tests; the production
// server uses the postgres implementations.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/id"
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// CatalogRepo is an in-memory domain.CatalogRepository.
type CatalogRepo[T domain.CatalogEntity] struct {
	mu         sync.RWMutex
	entityName string
	items      map[id.ID]T
}

// NewCatalogRepo creates an empty in-memory catalog repository.
func NewCatalogRepo[T domain.CatalogEntity](entityName string) *CatalogRepo[T] {
	return &CatalogRepo[T]{
		entityName: entityName,
		items:      make(map[id.ID]T),
	}
}

// Create stores a new entity.
func (r *CatalogRepo[T]) Create(ctx context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.GetName() == e.GetName() {
			return apperror.NewDuplicate(r.entityName, "name", e.GetName())
		}
	}
	r.items[e.GetID()] = e
	return nil
}

// GetByID retrieves an entity by ID.
func (r *CatalogRepo[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[entityID]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound(r.entityName, entityID.String())
	}
	return e, nil
}

// GetByName retrieves an entity by its unique name.
func (r *CatalogRepo[T]) GetByName(ctx context.Context, name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if e.GetName() == name {
			return e, nil
		}
	}
	var zero T
	return zero, apperror.NewNotFound(r.entityName, name)
}

// Update replaces a stored entity.
func (r *CatalogRepo[T]) Update(ctx context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[e.GetID()]; !ok {
		return apperror.NewNotFound(r.entityName, e.GetID().String())
	}
	r.items[e.GetID()] = e
	return nil
}

// Delete removes an entity.
func (r *CatalogRepo[T]) Delete(ctx context.Context, entityID id.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[entityID]; !ok {
		return apperror.NewNotFound(r.entityName, entityID.String())
	}
	delete(r.items, entityID)
	return nil
}

// List returns a filtered page sorted by name.
func (r *CatalogRepo[T]) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return domain.ListResult[T]{}, err
	}

	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		filtered := all[:0]
		for _, e := range all {
			if strings.Contains(strings.ToLower(e.GetName()), needle) {
				filtered = append(filtered, e)
			}
		}
		all = filtered
	}

	return paginate(all, filter), nil
}

// ListAll returns every entity sorted by name.
func (r *CatalogRepo[T]) ListAll(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, 0, len(r.items))
	for _, e := range r.items {
		items = append(items, e)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].GetName() < items[j].GetName()
	})
	return items, nil
}

// paginate slices a pre-sorted result set.
func paginate[T any](all []T, filter domain.ListFilter) domain.ListResult[T] {
	result := domain.ListResult[T]{
		TotalCount: int64(len(all)),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}

	start := filter.Offset
	if start > len(all) {
		start = len(all)
	}
	end := len(all)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	result.Items = all[start:end]
	return result
}
