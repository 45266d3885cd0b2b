package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarhub-backend/internal/model"
	"solarhub-backend/internal/seed"
)

func TestCatalogSeedShape(t *testing.T) {
	svc := NewCatalogService(seed.Catalog())

	all := svc.List("")
	assert.Len(t, all, 8)

	categories := svc.Categories()
	require.Len(t, categories, 7)
	assert.Equal(t, CategoryAll, categories[0])
}

func TestCatalogCategoryFilter(t *testing.T) {
	svc := NewCatalogService(seed.Catalog())

	inverters := svc.List("Inverters")
	require.Len(t, inverters, 2)
	for _, p := range inverters {
		assert.Equal(t, "Inverters", p.Category)
	}

	assert.Len(t, svc.List(CategoryAll), 8)
	assert.Empty(t, svc.List("Windmills"))
}

func TestCatalogGet(t *testing.T) {
	svc := NewCatalogService(seed.Catalog())

	product, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Solar Panel 100W Monocrystalline", product.Name)
	assert.NotEmpty(t, product.Features)
	assert.NotEmpty(t, product.Specifications)

	_, err = svc.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogCategoriesFirstSeenOrder(t *testing.T) {
	svc := NewCatalogService([]model.CatalogProduct{
		{ID: 1, Category: "B"},
		{ID: 2, Category: "A"},
		{ID: 3, Category: "B"},
	})

	assert.Equal(t, []string{CategoryAll, "B", "A"}, svc.Categories())
}
