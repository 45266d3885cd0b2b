package service

import (
	"errors"

	"solarhub-backend/internal/model"
	"solarhub-backend/internal/store"
	"solarhub-backend/pkg/money"
)

type CreateProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Stock    *int   `json:"stock" binding:"required,gte=0"`
}

// ProductService manages the admin product management screen.
type ProductService interface {
	View() TableView[model.Product]
	Search(term string)
	Sort(key string) (store.Direction, error)
	Create(req CreateProductRequest) (model.Product, error)
	Delete(id int) error
}

type productService struct {
	products      *store.Table[model.Product]
	notifications NotificationService
}

func NewProductService(seed []model.Product, notifications NotificationService) ProductService {
	cfg := store.Config[model.Product]{
		ID:    func(p model.Product) int { return p.ID },
		SetID: func(p model.Product, id int) model.Product { p.ID = id; return p },
		SearchText: func(p model.Product) []string {
			return []string{p.Name, p.Category}
		},
		SortKeys: map[string]func(a, b model.Product) int{
			"name":     func(a, b model.Product) int { return store.CompareStrings(a.Name, b.Name) },
			"category": func(a, b model.Product) int { return store.CompareStrings(a.Category, b.Category) },
			"stock":    func(a, b model.Product) int { return store.CompareInts(a.Stock, b.Stock) },
			"price": func(a, b model.Product) int {
				// Prices are display strings; compare their numeric value.
				pa, errA := money.Parse(a.Price)
				pb, errB := money.Parse(b.Price)
				if errA != nil || errB != nil {
					return store.CompareStrings(a.Price, b.Price)
				}
				return pa.Cmp(pb)
			},
		},
	}
	return &productService{
		products:      store.New(cfg, seed),
		notifications: notifications,
	}
}

func (s *productService) View() TableView[model.Product] {
	key, dir := s.products.Sort()
	return tableView(s.products.View(), s.products.SearchTerm(), key, dir)
}

func (s *productService) Search(term string) {
	s.products.SetSearchTerm(term)
}

func (s *productService) Sort(key string) (store.Direction, error) {
	return s.products.SetSort(key)
}

func (s *productService) Create(req CreateProductRequest) (model.Product, error) {
	if !money.Valid(req.Price) {
		return model.Product{}, errors.New("invalid price: expected a display amount like ₹12,000")
	}

	product := s.products.Add(model.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    *req.Stock,
	})

	if s.notifications != nil {
		s.notifications.Push(model.NotificationInventory, "Product added: "+product.Name)
	}
	return product, nil
}

func (s *productService) Delete(id int) error {
	product, ok := s.products.Get(id)
	if !ok {
		return ErrNotFound
	}
	s.products.Delete(id)

	if s.notifications != nil {
		s.notifications.Push(model.NotificationInventory, "Product removed: "+product.Name)
	}
	return nil
}
