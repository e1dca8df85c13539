package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/id"
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// DocumentRepo is an in-memory domain.DocumentRepository. Documents are
// kept in insertion order because derivation folds depend on it for
// deterministic site attribution.
type DocumentRepo[T domain.DocumentEntity] struct {
	mu         sync.RWMutex
	entityName string
	docs       []T
}

// NewDocumentRepo creates an empty in-memory document repository.
func NewDocumentRepo[T domain.DocumentEntity](entityName string) *DocumentRepo[T] {
	return &DocumentRepo[T]{entityName: entityName}
}

// Create appends a document to the log.
func (r *DocumentRepo[T]) Create(ctx context.Context, doc T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs = append(r.docs, doc)
	return nil
}

// GetByID retrieves a document by ID.
func (r *DocumentRepo[T]) GetByID(ctx context.Context, docID id.ID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.docs {
		if d.GetID() == docID {
			return d, nil
		}
	}
	var zero T
	return zero, apperror.NewNotFound(r.entityName, docID.String())
}

// Delete removes a document from the log.
func (r *DocumentRepo[T]) Delete(ctx context.Context, docID id.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.docs {
		if d.GetID() == docID {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound(r.entityName, docID.String())
}

// List returns a filtered page in insertion order.
func (r *DocumentRepo[T]) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return domain.ListResult[T]{}, err
	}

	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		filtered := all[:0]
		for _, d := range all {
			if strings.Contains(strings.ToLower(d.GetNumber()), needle) {
				filtered = append(filtered, d)
			}
		}
		all = filtered
	}

	return paginate(all, filter), nil
}

// ListAll returns the complete log in insertion order.
func (r *DocumentRepo[T]) ListAll(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, len(r.docs))
	copy(items, r.docs)
	return items, nil
}
