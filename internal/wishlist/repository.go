package wishlist

import (
	"context"
	"database/sql"
	"time"

	"atelier-be/internal/logger"
	"atelier-be/internal/product"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	ListByUser(ctx context.Context, userID uint) ([]*Item, error)
	Add(ctx context.Context, userID uint, productID string) (*Item, error)
	Remove(ctx context.Context, userID uint, productID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ListByUser returns wishlist entries joined with their products. Entries
// whose product vanished are excluded by the join.
func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByUser"),
		zap.Uint("user_id", userID),
	)

	start := time.Now()

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			w.id, w.user_id, w.product_id, w.created_at,
			p.id, p.name, p.description, p.price, p.image_url,
			p.category, p.stock_quantity, p.featured, p.created_at, p.updated_at
		FROM wishlist w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC
	`, userID)
	if err != nil {
		log.Error("failed to query wishlist", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make([]*Item, 0)

	for rows.Next() {
		var item Item
		var p product.Product
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.CreatedAt,
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.ImageURL,
			&p.Category,
			&p.StockQuantity,
			&p.Featured,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.Product = &p
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Info("wishlist fetched",
		zap.Int("count", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func (r *repository) Add(ctx context.Context, userID uint, productID string) (*Item, error) {
	var item Item
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO wishlist (user_id, product_id)
		VALUES ($1, $2)
		RETURNING id, user_id, product_id, created_at
	`, userID, productID).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAlreadyWishlisted
		}
		return nil, err
	}

	return &item, nil
}

func (r *repository) Remove(ctx context.Context, userID uint, productID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
