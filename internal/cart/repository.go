package cart

import (
	"context"
	"database/sql"
	"time"

	"atelier-be/internal/logger"
	"atelier-be/internal/product"

	"go.uber.org/zap"
)

type Repository interface {
	GetCartRows(ctx context.Context, ownerKey string) ([]*Item, error)
	UpsertLine(ctx context.Context, ownerKey, productID string, quantity int) (*Item, error)
	SetQuantity(ctx context.Context, ownerKey, productID string, quantity int) error
	DeleteLine(ctx context.Context, ownerKey, productID string) error
	Clear(ctx context.Context, ownerKey string) error
	MergeOwner(ctx context.Context, fromKey, toKey string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetCartRows returns the owner's lines joined with product data. Lines whose
// product vanished are excluded by the join.
func (r *repository) GetCartRows(ctx context.Context, ownerKey string) ([]*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCartRows"),
		zap.String("owner_key", ownerKey),
	)

	start := time.Now()

	query := `
	SELECT
		c.id,
		c.owner_key,
		c.product_id,
		c.quantity,
		c.created_at,
		c.updated_at,

		p.id,
		p.name,
		p.description,
		p.price,
		p.image_url,
		p.category,
		p.stock_quantity,
		p.featured,
		p.created_at,
		p.updated_at
	FROM cart_items c
	JOIN products p ON p.id = c.product_id
	WHERE c.owner_key = $1
	ORDER BY c.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerKey)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	result := make([]*Item, 0)

	for rows.Next() {
		item := &Item{Product: &product.Product{}}
		if err := rows.Scan(
			&item.ID,
			&item.OwnerKey,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,

			&item.Product.ID,
			&item.Product.Name,
			&item.Product.Description,
			&item.Product.Price,
			&item.Product.ImageURL,
			&item.Product.Category,
			&item.Product.StockQuantity,
			&item.Product.Featured,
			&item.Product.CreatedAt,
			&item.Product.UpdatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// UpsertLine adds quantity to an existing (owner, product) line or inserts a
// new one. The unique index on (owner_key, product_id) makes the increment a
// single statement, so two concurrent adds both land.
func (r *repository) UpsertLine(ctx context.Context, ownerKey, productID string, quantity int) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertLine"),
		zap.String("owner_key", ownerKey),
		zap.String("product_id", productID),
	)

	query := `
	INSERT INTO cart_items (owner_key, product_id, quantity)
	VALUES ($1, $2, $3)
	ON CONFLICT (owner_key, product_id)
	DO UPDATE SET
		quantity = cart_items.quantity + EXCLUDED.quantity,
		updated_at = NOW()
	RETURNING id, owner_key, product_id, quantity, created_at, updated_at`

	item := &Item{}
	err := r.db.QueryRowContext(ctx, query, ownerKey, productID, quantity).Scan(
		&item.ID,
		&item.OwnerKey,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert cart line", zap.Error(err))
		return nil, err
	}

	log.Info("cart line upserted",
		zap.String("cart_item_id", item.ID),
		zap.Int("quantity", item.Quantity),
	)

	return item, nil
}

func (r *repository) SetQuantity(ctx context.Context, ownerKey, productID string, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE owner_key = $2 AND product_id = $3
	`, quantity, ownerKey, productID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrLineNotFound
	}

	return nil
}

func (r *repository) DeleteLine(ctx context.Context, ownerKey, productID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE owner_key = $1 AND product_id = $2
	`, ownerKey, productID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrLineNotFound
	}

	return nil
}

func (r *repository) Clear(ctx context.Context, ownerKey string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE owner_key = $1
	`, ownerKey)
	return err
}

// MergeOwner moves every line under fromKey to toKey, summing quantities for
// products already present under toKey. Runs in one transaction so a crash
// cannot leave the same product under both keys.
func (r *repository) MergeOwner(ctx context.Context, fromKey, toKey string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "MergeOwner"),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO cart_items (owner_key, product_id, quantity)
		SELECT $1, product_id, quantity
		FROM cart_items
		WHERE owner_key = $2
		ON CONFLICT (owner_key, product_id)
		DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			updated_at = NOW()
	`, toKey, fromKey)
	if err != nil {
		log.Error("failed to merge cart lines", zap.Error(err))
		return err
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE owner_key = $1
	`, fromKey)
	if err != nil {
		log.Error("failed to clear merged cart", zap.Error(err))
		return err
	}

	return tx.Commit()
}
