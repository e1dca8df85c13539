package memory

import (
	"context"
	"testing"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/domain"
	"github.com/salilgupta4/agile-rental-management/internal/domain/catalogs/product"
)

func TestCatalogRepoCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepo[*product.Product]("product")
	svc := product.NewService(repo)

	pipe := product.NewProduct("Scaffolding Pipe", "Nos")
	if err := svc.Create(ctx, pipe); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Create(ctx, product.NewProduct("Scaffolding Pipe", "Sets")); err == nil {
		t.Fatal("expected duplicate name error")
	} else if appErr, ok := apperror.AsAppError(err); !ok || appErr.Code != apperror.CodeDuplicate {
		t.Errorf("error = %v, want %s", err, apperror.CodeDuplicate)
	}

	got, err := svc.GetByName(ctx, "Scaffolding Pipe")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if got.ID != pipe.ID {
		t.Errorf("got id %s, want %s", got.ID, pipe.ID)
	}

	got.Unit = "Mtr"
	if err := svc.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := svc.Get(ctx, pipe.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if updated.Unit != "Mtr" {
		t.Errorf("unit = %q after update", updated.Unit)
	}

	if err := svc.Delete(ctx, pipe.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, pipe.ID); !apperror.IsNotFound(err) {
		t.Errorf("get after delete = %v, want not found", err)
	}
}

func TestCatalogRepoListSearchAndPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepo[*product.Product]("product")

	names := []string{"Base Jack", "Acro Span", "MS Prop", "Cuplock Vertical"}
	for _, n := range names {
		if err := repo.Create(ctx, product.NewProduct(n, "Nos")); err != nil {
			t.Fatalf("create %s: %v", n, err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	want := []string{"Acro Span", "Base Jack", "Cuplock Vertical", "MS Prop"}
	for i, n := range want {
		if all[i].Name != n {
			t.Fatalf("ListAll[%d] = %q, want %q (sorted by name)", i, all[i].Name, n)
		}
	}

	result, err := repo.List(ctx, domain.ListFilter{Search: "pro"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.TotalCount != 1 || result.Items[0].Name != "MS Prop" {
		t.Errorf("search 'pro' returned %d items", result.TotalCount)
	}

	page, err := repo.List(ctx, domain.ListFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if page.TotalCount != 4 || len(page.Items) != 2 || page.Items[0].Name != "Cuplock Vertical" {
		t.Errorf("page = %d items of %d starting %q", len(page.Items), page.TotalCount, page.Items[0].Name)
	}
}
