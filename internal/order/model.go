package order

import (
	"time"

	"atelier-be/internal/address"
)

type Status string

// Orders are created pending and never transition; payment capture is out of
// scope for this storefront.
const StatusPending Status = "pending"

type Order struct {
	ID                string    `json:"id"`
	UserID            *uint     `json:"user_id,omitempty"`
	OwnerKey          string    `json:"-"`
	Status            Status    `json:"status"`
	Subtotal          float64   `json:"subtotal"`
	ShippingCost      float64   `json:"shipping_cost"`
	TaxAmount         float64   `json:"tax_amount"`
	TotalAmount       float64   `json:"total_amount"`
	PaymentMethod     string    `json:"payment_method"`
	ShippingAddressID *string   `json:"shipping_address_id,omitempty"`
	BillingAddressID  *string   `json:"billing_address_id,omitempty"`
	IdempotencyKey    *string   `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem captures the unit price at purchase time, decoupled from later
// catalog price changes.
type OrderItem struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type PlaceOrderParams struct {
	OwnerKey        string
	UserID          *uint
	ShippingAddress *address.Input
	BillingAddress  *address.Input
	PaymentMethod   string
	IdempotencyKey  *string
}
