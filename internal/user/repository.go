package user

import (
	"context"
	"database/sql"

	"atelier-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, params RegisterParams, passwordHash string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uint) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params RegisterParams, passwordHash string) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password, first_name, last_name, phone, created_at, updated_at
	`, params.Email, passwordHash, params.FirstName, params.LastName, params.Phone).Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return User{}, ErrEmailExists
		}
		log.Error("db: failed to insert user",
			zap.String("email", params.Email),
			zap.Error(err),
		)
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, first_name, last_name, phone, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email).Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, first_name, last_name, phone, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id).Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	return u, err
}
