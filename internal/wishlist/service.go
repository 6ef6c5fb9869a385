package wishlist

import (
	"context"

	"atelier-be/internal/logger"
	"atelier-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, userID uint) ([]*Item, error)
	Add(ctx context.Context, userID uint, productID string) (*Item, error)
	Remove(ctx context.Context, userID uint, productID string) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) List(ctx context.Context, userID uint) ([]*Item, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add saves a product for later. The product must exist, and saving the same
// product twice is a conflict rather than a no-op so the client can tell.
func (s *service) Add(ctx context.Context, userID uint, productID string) (*Item, error) {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrProductNotFound
	}

	item, err := s.repo.Add(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	item.Product = p

	logger.FromCtx(ctx).Info("product wishlisted",
		zap.Uint("user_id", userID),
		zap.String("product_id", productID),
	)

	return item, nil
}

func (s *service) Remove(ctx context.Context, userID uint, productID string) error {
	return s.repo.Remove(ctx, userID, productID)
}
