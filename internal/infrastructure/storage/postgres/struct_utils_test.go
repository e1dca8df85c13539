package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
)

type mockCatalog struct {
	entity.Catalog
	Unit string `db:"unit" json:"unit"`
}

func TestExtractDBColumnsEmbedded(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{
		"id", "created_at", "updated_at", "name", "unit",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestStructToMapEmbedded(t *testing.T) {
	cat := mockCatalog{
		Catalog: entity.NewCatalog("Scaffolding Pipe"),
		Unit:    "Mtr",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, "Scaffolding Pipe", m["name"])
	assert.Equal(t, "Mtr", m["unit"])
	assert.Equal(t, cat.CreatedAt, m["created_at"])
}

func TestStructToMapPointer(t *testing.T) {
	cat := &mockCatalog{
		Catalog: entity.NewCatalog("Base Jack"),
		Unit:    "Nos",
	}

	m := StructToMap(cat)

	assert.Equal(t, "Base Jack", m["name"])
}
