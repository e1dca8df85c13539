package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/id"
	"github.com/salilgupta4/agile-rental-management/internal/domain"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/http/v1/dto"
)

// identitySetter is implemented by entity.Document and lets the handler
// assign an ID to documents decoded from a request body.
type identitySetter interface {
	EnsureIdentity()
}

// DocumentHandler provides generic HTTP handlers for transaction documents.
// Documents bind directly from JSON: the domain models own the wire shape,
// including the legacy single-item upgrade in their UnmarshalJSON.
type DocumentHandler[T domain.DocumentEntity] struct {
	*BaseHandler
	service    *domain.DocumentService[T]
	entityName string
	newFn      func() T
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler[T domain.DocumentEntity](
	base *BaseHandler,
	service *domain.DocumentService[T],
	entityName string,
	newFn func() T,
) *DocumentHandler[T] {
	return &DocumentHandler[T]{
		BaseHandler: base,
		service:     service,
		entityName:  entityName,
		newFn:       newFn,
	}
}

// List handles GET /{doc} - list with filtering and pagination.
func (h *DocumentHandler[T]) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.ListFilter{
		Search:  c.Query("search"),
		Limit:   h.ParseIntQuery(c, "limit", 50),
		Offset:  h.ParseIntQuery(c, "offset", 0),
		OrderBy: c.DefaultQuery("orderBy", "-date"),
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /{doc}/:id - get single document.
func (h *DocumentHandler[T]) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.Get(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Create handles POST /{doc} - append a document to the log.
func (h *DocumentHandler[T]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	doc := h.newFn()
	if !h.BindJSON(c, doc) {
		return
	}

	if init, ok := any(doc).(identitySetter); ok {
		init.EnsureIdentity()
	}

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// Delete handles DELETE /{doc}/:id - remove a document from the log.
func (h *DocumentHandler[T]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
