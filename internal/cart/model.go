package cart

import (
	"time"

	"atelier-be/internal/product"
)

// Item is one cart line: at most one per (owner key, product) pair.
type Item struct {
	ID        string    `json:"id"`
	OwnerKey  string    `json:"-"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Product is populated on reads that join the catalog.
	Product *product.Product `json:"product,omitempty"`
}
