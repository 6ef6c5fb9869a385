package order

import (
	"context"
	"database/sql"
	"time"

	"atelier-be/internal/address"
	"atelier-be/internal/cart"
	"atelier-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindByIdempotencyKey(ctx context.Context, ownerKey, key string) (*Order, error)
	CreateOrderTx(ctx context.Context, o *Order, lines []*cart.Item, shipping, billing *address.Input) error
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	GetDetail(ctx context.Context, orderID string) (*Order, error)
}

type repository struct {
	db          *sql.DB
	addressRepo address.Repository
}

func NewRepository(db *sql.DB, addressRepo address.Repository) Repository {
	return &repository{db: db, addressRepo: addressRepo}
}

func (r *repository) FindByIdempotencyKey(ctx context.Context, ownerKey, key string) (*Order, error) {
	query := `
		SELECT id, user_id, owner_key, status, subtotal, shipping_cost,
		       tax_amount, total_amount, payment_method, created_at, updated_at
		FROM orders
		WHERE owner_key = $1 AND idempotency_key = $2`

	var o Order
	err := r.db.QueryRowContext(ctx, query, ownerKey, key).Scan(
		&o.ID,
		&o.UserID,
		&o.OwnerKey,
		&o.Status,
		&o.Subtotal,
		&o.ShippingCost,
		&o.TaxAmount,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// CreateOrderTx persists the order, its lines, any checkout addresses, and
// clears the owner's cart in a single transaction, so a failure partway
// leaves no half-written order behind.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order, lines []*cart.Item, shipping, billing *address.Input) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.String("owner_key", o.OwnerKey),
	)

	start := time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Checkout addresses
	if shipping != nil {
		id, err := r.addressRepo.CreateTx(ctx, tx, o.UserID, address.TypeShipping, *shipping)
		if err != nil {
			log.Error("failed to insert shipping address", zap.Error(err))
			return err
		}
		o.ShippingAddressID = &id
	}
	if billing != nil {
		id, err := r.addressRepo.CreateTx(ctx, tx, o.UserID, address.TypeBilling, *billing)
		if err != nil {
			log.Error("failed to insert billing address", zap.Error(err))
			return err
		}
		o.BillingAddressID = &id
	}

	// 2. Order row
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id, owner_key, status, subtotal, shipping_cost,
			tax_amount, total_amount, payment_method,
			shipping_address_id, billing_address_id, idempotency_key
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`,
		o.UserID,
		o.OwnerKey,
		o.Status,
		o.Subtotal,
		o.ShippingCost,
		o.TaxAmount,
		o.TotalAmount,
		o.PaymentMethod,
		o.ShippingAddressID,
		o.BillingAddressID,
		o.IdempotencyKey,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	// 3. Order lines, unit price captured now
	for _, line := range lines {
		if line.Product == nil {
			continue
		}

		var item OrderItem
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id, order_id, product_id, quantity, price, created_at
		`, o.ID, line.ProductID, line.Quantity, line.Product.Price).Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.CreatedAt,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.String("product_id", line.ProductID),
				zap.Error(err),
			)
			return err
		}
		o.Items = append(o.Items, item)
	}

	// 4. Clear the cart
	if _, err = tx.ExecContext(ctx, `
		DELETE FROM cart_items WHERE owner_key = $1
	`, o.OwnerKey); err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.Float64("total", o.TotalAmount),
		zap.Int("items", len(o.Items)),
		zap.Duration("duration", time.Since(start)),
	)

	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, owner_key, status, subtotal, shipping_cost,
		       tax_amount, total_amount, payment_method, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*Order, 0)

	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.OwnerKey,
			&o.Status,
			&o.Subtotal,
			&o.ShippingCost,
			&o.TaxAmount,
			&o.TotalAmount,
			&o.PaymentMethod,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &o)
	}

	return result, rows.Err()
}

func (r *repository) GetDetail(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, owner_key, status, subtotal, shipping_cost,
		       tax_amount, total_amount, payment_method, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&o.ID,
		&o.UserID,
		&o.OwnerKey,
		&o.Status,
		&o.Subtotal,
		&o.ShippingCost,
		&o.TaxAmount,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item OrderItem
		if err := itemRows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}

	return &o, itemRows.Err()
}
