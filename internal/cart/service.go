package cart

import (
	"context"

	"atelier-be/internal/logger"
	"atelier-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts. Every operation is keyed by
// the owner key (user id or anonymous session id).
type Service interface {
	Get(ctx context.Context, ownerKey string) ([]*Item, error)
	Add(ctx context.Context, ownerKey, productID string, quantity int) (*Item, error)
	UpdateQuantity(ctx context.Context, ownerKey, productID string, quantity int) error
	Remove(ctx context.Context, ownerKey, productID string) error
	Clear(ctx context.Context, ownerKey string) error
	MergeInto(ctx context.Context, fromKey, toKey string) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) Get(ctx context.Context, ownerKey string) ([]*Item, error) {
	return s.repo.GetCartRows(ctx, ownerKey)
}

// Add merges into an existing line for the same product instead of creating a
// duplicate row. Stock is display-only and not checked here.
func (s *service) Add(ctx context.Context, ownerKey, productID string, quantity int) (*Item, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrProductNotFound
	}

	item, err := s.repo.UpsertLine(ctx, ownerKey, productID, quantity)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("added to cart",
		zap.String("owner_key", ownerKey),
		zap.String("product_id", productID),
		zap.Int("quantity", item.Quantity),
	)

	return item, nil
}

// UpdateQuantity sets the line quantity; zero or negative removes the line.
// Reports ErrLineNotFound when no matching line exists, e.g. when a second
// tab already removed it.
func (s *service) UpdateQuantity(ctx context.Context, ownerKey, productID string, quantity int) error {
	if quantity > MaxQuantity {
		return ErrInvalidQuantity
	}

	if quantity <= 0 {
		return s.repo.DeleteLine(ctx, ownerKey, productID)
	}

	return s.repo.SetQuantity(ctx, ownerKey, productID, quantity)
}

// Remove deletes the line if present; removing an absent line is a no-op.
func (s *service) Remove(ctx context.Context, ownerKey, productID string) error {
	err := s.repo.DeleteLine(ctx, ownerKey, productID)
	if err == ErrLineNotFound {
		return nil
	}
	return err
}

func (s *service) Clear(ctx context.Context, ownerKey string) error {
	return s.repo.Clear(ctx, ownerKey)
}

// MergeInto reassigns the anonymous cart to the authenticated user on login,
// summing quantities for products present in both carts.
func (s *service) MergeInto(ctx context.Context, fromKey, toKey string) error {
	if fromKey == "" || fromKey == toKey {
		return nil
	}
	return s.repo.MergeOwner(ctx, fromKey, toKey)
}
