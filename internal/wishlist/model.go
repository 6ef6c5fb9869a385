package wishlist

import (
	"time"

	"atelier-be/internal/product"
)

type Item struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"-"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`

	Product *product.Product `json:"product,omitempty"`
}
