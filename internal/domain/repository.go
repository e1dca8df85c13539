// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/id"
)

// --- Filter & Pagination ---

// ListFilter contains common filtering options for list operations.
type ListFilter struct {
	// Search performs substring search on the name/number field
	Search string

	// OrderBy specifies sorting (e.g., "name", "-date")
	OrderBy string

	// Pagination
	Limit  int
	Offset int
}

// DefaultListFilter returns sensible defaults.
func DefaultListFilter() ListFilter {
	return ListFilter{
		Limit:   50,
		OrderBy: "name",
	}
}

// ListResult contains paginated results.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Repository Interfaces ---

// CatalogRepository defines CRUD operations for catalog entities.
// Catalog entries are referenced by name from transaction line items,
// so lookups by name are first-class.
type CatalogRepository[T entity.Validatable] interface {
	// Create inserts a new entity
	Create(ctx context.Context, entity T) error

	// GetByID retrieves entity by ID
	GetByID(ctx context.Context, id id.ID) (T, error)

	// GetByName retrieves entity by its unique name
	GetByName(ctx context.Context, name string) (T, error)

	// Update modifies an existing entity
	Update(ctx context.Context, entity T) error

	// Delete removes the entity
	Delete(ctx context.Context, id id.ID) error

	// List returns a filtered page of entities
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)

	// ListAll returns every entity (master data sets are small)
	ListAll(ctx context.Context) ([]T, error)
}

// DocumentRepository defines operations for append-only transaction logs.
// Documents are created and deleted by upstream workflows but never updated;
// the derivation engine always reads the full log.
type DocumentRepository[T entity.Validatable] interface {
	// Create appends a new document to the log
	Create(ctx context.Context, doc T) error

	// GetByID retrieves a document by ID
	GetByID(ctx context.Context, id id.ID) (T, error)

	// Delete removes a document from the log
	Delete(ctx context.Context, id id.ID) error

	// List returns a filtered page of documents
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)

	// ListAll returns the complete log for derivation passes
	ListAll(ctx context.Context) ([]T, error)
}
