package service

import (
	"solarhub-backend/internal/model"
)

// CategoryAll clears the storefront category filter.
const CategoryAll = "All"

// CatalogService serves the static storefront catalog. The catalog is
// never mutated; every accessor returns copies.
type CatalogService interface {
	List(category string) []model.CatalogProduct
	Get(id int) (model.CatalogProduct, error)
	Categories() []string
}

type catalogService struct {
	products   []model.CatalogProduct
	categories []string
}

// NewCatalogService precomputes the category list: "All" first, then the
// unique categories in first-seen order.
func NewCatalogService(seed []model.CatalogProduct) CatalogService {
	products := make([]model.CatalogProduct, len(seed))
	copy(products, seed)

	categories := []string{CategoryAll}
	seen := map[string]bool{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return &catalogService{products: products, categories: categories}
}

// List filters by exact category match; "All" or an empty category yields
// the full catalog.
func (s *catalogService) List(category string) []model.CatalogProduct {
	if category == "" || category == CategoryAll {
		out := make([]model.CatalogProduct, len(s.products))
		copy(out, s.products)
		return out
	}

	out := make([]model.CatalogProduct, 0, len(s.products))
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) Get(id int) (model.CatalogProduct, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.CatalogProduct{}, ErrNotFound
}

func (s *catalogService) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}
