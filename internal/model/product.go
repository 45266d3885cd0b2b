package model

// Product is an entry in the admin product management table. Price is kept
// as the display string the table renders; pkg/money validates it on create.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
}
