package domain

import (
	"context"
	"fmt"
	"testing"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/id"
)

type fakeDoc struct {
	docID  id.ID
	number string
}

func (d *fakeDoc) Validate(context.Context) error { return nil }
func (d *fakeDoc) GetID() id.ID                   { return d.docID }
func (d *fakeDoc) GetNumber() string              { return d.number }
func (d *fakeDoc) SetNumber(n string)             { d.number = n }

type fakeDocRepo struct {
	docs []*fakeDoc
}

func (r *fakeDocRepo) Create(_ context.Context, doc *fakeDoc) error {
	r.docs = append(r.docs, doc)
	return nil
}

func (r *fakeDocRepo) GetByID(_ context.Context, docID id.ID) (*fakeDoc, error) {
	for _, d := range r.docs {
		if d.docID == docID {
			return d, nil
		}
	}
	return nil, apperror.NewNotFound("doc", docID)
}

func (r *fakeDocRepo) Delete(_ context.Context, docID id.ID) error {
	for i, d := range r.docs {
		if d.docID == docID {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("doc", docID)
}

func (r *fakeDocRepo) List(_ context.Context, filter ListFilter) (ListResult[*fakeDoc], error) {
	return ListResult[*fakeDoc]{
		Items:      r.docs,
		TotalCount: int64(len(r.docs)),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}, nil
}

func (r *fakeDocRepo) ListAll(_ context.Context) ([]*fakeDoc, error) {
	return r.docs, nil
}

type countingNumerator struct {
	prefix string
	n      int
}

func (c *countingNumerator) Next(_ context.Context, prefix string) (string, error) {
	c.prefix = prefix
	c.n++
	return fmt.Sprintf("%s-%05d", prefix, c.n), nil
}

func TestDocumentServiceAssignsNumber(t *testing.T) {
	ctx := context.Background()
	num := &countingNumerator{}
	svc := NewDocumentService[*fakeDoc](&fakeDocRepo{}, "doc").WithNumbering(num, "DC")

	doc := &fakeDoc{docID: id.New()}
	if err := svc.Create(ctx, doc); err != nil {
		t.Fatalf("create: %v", err)
	}

	if doc.number != "DC-00001" {
		t.Errorf("number = %q, want DC-00001", doc.number)
	}
	if num.prefix != "DC" {
		t.Errorf("numerator called with prefix %q", num.prefix)
	}
}

func TestDocumentServiceKeepsExplicitNumber(t *testing.T) {
	ctx := context.Background()
	num := &countingNumerator{}
	svc := NewDocumentService[*fakeDoc](&fakeDocRepo{}, "doc").WithNumbering(num, "DC")

	doc := &fakeDoc{docID: id.New(), number: "DC-2023-99999"}
	if err := svc.Create(ctx, doc); err != nil {
		t.Fatalf("create: %v", err)
	}

	if doc.number != "DC-2023-99999" {
		t.Errorf("number = %q, explicit number must survive", doc.number)
	}
	if num.n != 0 {
		t.Errorf("numerator was called %d times for a pre-numbered document", num.n)
	}
}

func TestDocumentServiceWithoutNumerator(t *testing.T) {
	ctx := context.Background()
	svc := NewDocumentService[*fakeDoc](&fakeDocRepo{}, "doc")

	doc := &fakeDoc{docID: id.New()}
	if err := svc.Create(ctx, doc); err != nil {
		t.Fatalf("create: %v", err)
	}
	if doc.number != "" {
		t.Errorf("number = %q, want empty without numbering", doc.number)
	}
}

func TestDocumentServiceListClampsLimit(t *testing.T) {
	ctx := context.Background()
	repo := &fakeDocRepo{}
	svc := NewDocumentService[*fakeDoc](repo, "doc")

	result, err := svc.List(ctx, ListFilter{Limit: 10000})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Limit != 500 {
		t.Errorf("limit = %d, want clamp to 500", result.Limit)
	}

	result, err = svc.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Limit != 50 {
		t.Errorf("limit = %d, want default 50", result.Limit)
	}
}
