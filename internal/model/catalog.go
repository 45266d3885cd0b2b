package model

// CatalogProduct is a sellable product in the storefront. The catalog is a
// static collection, distinct from the admin product management table.
type CatalogProduct struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Price          string            `json:"price"`
	Description    string            `json:"description"`
	Image          string            `json:"image"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Category       string            `json:"category"`
}
