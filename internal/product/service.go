package product

import "context"

// Service defines read access to the catalog. The catalog is immutable from
// the shopper's perspective; writes happen through seeding only.
type Service interface {
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	return s.repo.GetList(ctx, opts)
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}
