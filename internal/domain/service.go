package domain

import (
	"context"
	"fmt"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/id"
	"github.com/salilgupta4/agile-rental-management/pkg/logger"
)

// CatalogEntity is the constraint for catalog service entities.
type CatalogEntity interface {
	entity.Validatable
	GetID() id.ID
	GetName() string
}

// CatalogService provides common CRUD operations for catalog entities.
// Entity-specific services embed it and add their own behavior.
type CatalogService[T CatalogEntity] struct {
	repo       CatalogRepository[T]
	entityName string
}

// NewCatalogService creates a generic catalog service.
func NewCatalogService[T CatalogEntity](repo CatalogRepository[T], entityName string) *CatalogService[T] {
	return &CatalogService[T]{repo: repo, entityName: entityName}
}

// Create validates the entity, enforces name uniqueness and stores it.
func (s *CatalogService[T]) Create(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		return err
	}

	if _, err := s.repo.GetByName(ctx, e.GetName()); err == nil {
		return apperror.NewDuplicate(s.entityName, "name", e.GetName())
	} else if !apperror.IsNotFound(err) {
		return fmt.Errorf("check %s name: %w", s.entityName, err)
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return fmt.Errorf("create %s: %w", s.entityName, err)
	}

	logger.Info(ctx, "catalog entry created",
		"entity", s.entityName,
		"id", e.GetID(),
		"name", e.GetName(),
	)
	return nil
}

// Get retrieves an entity by ID.
func (s *CatalogService[T]) Get(ctx context.Context, entityID id.ID) (T, error) {
	return s.repo.GetByID(ctx, entityID)
}

// GetByName retrieves an entity by its unique name.
func (s *CatalogService[T]) GetByName(ctx context.Context, name string) (T, error) {
	return s.repo.GetByName(ctx, name)
}

// Update validates and persists entity changes.
func (s *CatalogService[T]) Update(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return fmt.Errorf("update %s: %w", s.entityName, err)
	}
	return nil
}

// Delete removes an entity by ID.
func (s *CatalogService[T]) Delete(ctx context.Context, entityID id.ID) error {
	if err := s.repo.Delete(ctx, entityID); err != nil {
		return fmt.Errorf("delete %s: %w", s.entityName, err)
	}
	logger.Info(ctx, "catalog entry deleted", "entity", s.entityName, "id", entityID)
	return nil
}

// List returns a filtered page of entities.
func (s *CatalogService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	return s.repo.List(ctx, filter)
}

// ListAll returns every entity in the catalog.
func (s *CatalogService[T]) ListAll(ctx context.Context) ([]T, error) {
	return s.repo.ListAll(ctx)
}

// DocumentEntity is the constraint for document service entities.
type DocumentEntity interface {
	entity.Validatable
	GetID() id.ID
	GetNumber() string
	SetNumber(string)
}

// Numerator allocates human-facing document numbers.
type Numerator interface {
	Next(ctx context.Context, prefix string) (string, error)
}

// DocumentService provides common operations for append-only transaction logs.
type DocumentService[T DocumentEntity] struct {
	repo         DocumentRepository[T]
	entityName   string
	numerator    Numerator
	numberPrefix string
}

// NewDocumentService creates a generic document service.
func NewDocumentService[T DocumentEntity](repo DocumentRepository[T], entityName string) *DocumentService[T] {
	return &DocumentService[T]{repo: repo, entityName: entityName}
}

// WithNumbering enables auto-numbering for documents created without a
// number. Numbering runs before validation side effects and outside any
// transaction, so gaps can appear when a create fails afterwards.
func (s *DocumentService[T]) WithNumbering(n Numerator, prefix string) *DocumentService[T] {
	s.numerator = n
	s.numberPrefix = prefix
	return s
}

// Create validates the document and appends it to the log.
func (s *DocumentService[T]) Create(ctx context.Context, doc T) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if s.numerator != nil && doc.GetNumber() == "" {
		number, err := s.numerator.Next(ctx, s.numberPrefix)
		if err != nil {
			return fmt.Errorf("assign %s number: %w", s.entityName, err)
		}
		doc.SetNumber(number)
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return fmt.Errorf("create %s: %w", s.entityName, err)
	}
	logger.Info(ctx, "document recorded", "entity", s.entityName, "id", doc.GetID())
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentService[T]) Get(ctx context.Context, docID id.ID) (T, error) {
	return s.repo.GetByID(ctx, docID)
}

// Delete removes a document from the log.
func (s *DocumentService[T]) Delete(ctx context.Context, docID id.ID) error {
	if err := s.repo.Delete(ctx, docID); err != nil {
		return fmt.Errorf("delete %s: %w", s.entityName, err)
	}
	logger.Info(ctx, "document deleted", "entity", s.entityName, "id", docID)
	return nil
}

// List returns a filtered page of documents.
func (s *DocumentService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "-date"
	}
	return s.repo.List(ctx, filter)
}

// ListAll returns the full log for derivation passes.
func (s *DocumentService[T]) ListAll(ctx context.Context) ([]T, error) {
	return s.repo.ListAll(ctx)
}
