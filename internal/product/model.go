package product

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	ImageURL      string    `json:"image_url"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stock_quantity"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListOptions narrows the catalog listing. Zero value lists everything,
// newest first.
type ListOptions struct {
	FeaturedOnly bool
	Search       string
	Category     string
}
