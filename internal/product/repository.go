package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"atelier-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetList(ctx context.Context, opts ListOptions) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id,
	name,
	description,
	price,
	image_url,
	category,
	stock_quantity,
	featured,
	created_at,
	updated_at`

func (r *repository) GetList(ctx context.Context, opts ListOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetList"),
	)

	start := time.Now()

	where := []string{"TRUE"}
	args := []any{}

	if opts.FeaturedOnly {
		where = append(where, "featured = TRUE")
	}

	if opts.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, opts.Category)
	}

	if opts.Search != "" {
		where = append(where,
			fmt.Sprintf(
				"(name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)",
				len(args)+1,
				len(args)+1,
				len(args)+1,
			),
		)
		args = append(args, "%"+opts.Search+"%")
	}

	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	result := make([]*Product, 0)

	for rows.Next() {
		var p Product
		if err := rows.Scan(
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
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, &p)
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

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE id = $1`

	var p Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
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
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
