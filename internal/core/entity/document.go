package entity

import (
	"context"
	"time"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/id"
)

// Document is the base type for transaction records (purchases, transfers,
// returns, sales, rental orders). Documents are append-only: once written
// they are never mutated, only deleted by upstream workflows.
type Document struct {
	BaseEntity

	// Number is the human-facing document reference (DC number, invoice number)
	Number string `db:"number" json:"number,omitempty"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Comment is an optional user comment
	Comment string `db:"comment" json:"comment,omitempty"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument(date time.Time) Document {
	doc := Document{
		BaseEntity: NewBaseEntity(),
		Date:       date,
	}
	if doc.Date.IsZero() {
		doc.Date = time.Now().UTC()
	}
	return doc
}

// GetID returns the document ID.
func (d *Document) GetID() id.ID {
	return d.ID
}

// EnsureIdentity assigns a fresh ID and timestamps to a document built
// from a decoded request body. Existing identity is preserved.
func (d *Document) EnsureIdentity() {
	if id.IsNil(d.ID) {
		d.BaseEntity = NewBaseEntity()
	}
}

// GetNumber returns the document number.
func (d *Document) GetNumber() string {
	return d.Number
}

// SetNumber assigns the document number (used by auto-numbering).
func (d *Document) SetNumber(number string) {
	d.Number = number
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	return nil
}
