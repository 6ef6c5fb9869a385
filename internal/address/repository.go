package address

import (
	"context"
	"database/sql"
)

type Repository interface {
	CreateTx(ctx context.Context, tx *sql.Tx, userID *uint, typ Type, in Input) (string, error)
	ListByUser(ctx context.Context, userID uint) ([]*Address, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateTx inserts an address inside the caller's transaction so checkout can
// persist addresses and the order atomically.
func (r *repository) CreateTx(ctx context.Context, tx *sql.Tx, userID *uint, typ Type, in Input) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, `
		INSERT INTO user_addresses (
			user_id, type, first_name, last_name, company,
			address_line_1, address_line_2, city, state, postal_code, country
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`,
		userID,
		typ,
		in.FirstName,
		in.LastName,
		in.Company,
		in.AddressLine1,
		in.AddressLine2,
		in.City,
		in.State,
		in.PostalCode,
		in.Country,
	).Scan(&id)

	return id, err
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Address, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, user_id, type, first_name, last_name, company,
			address_line_1, address_line_2, city, state, postal_code, country,
			is_default, created_at, updated_at
		FROM user_addresses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*Address, 0)

	for rows.Next() {
		var a Address
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Type,
			&a.FirstName,
			&a.LastName,
			&a.Company,
			&a.AddressLine1,
			&a.AddressLine2,
			&a.City,
			&a.State,
			&a.PostalCode,
			&a.Country,
			&a.IsDefault,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &a)
	}

	return result, rows.Err()
}
