package wishlist

import (
	"context"
	"testing"

	"atelier-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByUser(ctx context.Context, userID uint) ([]*Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Item), args.Error(1)
}

func (m *MockRepository) Add(ctx context.Context, userID uint, productID string) (*Item, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, userID uint, productID string) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

// MockProductRepository is a mock for the product repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetList(ctx context.Context, opts product.ListOptions) ([]*product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(repo, productRepo)

		p := &product.Product{ID: "prod-1", Name: "Cashmere Sweater", Price: 89.00}
		productRepo.On("GetByID", ctx, "prod-1").Return(p, nil)
		repo.On("Add", ctx, uint(7), "prod-1").Return(&Item{ID: "wish-1", UserID: 7, ProductID: "prod-1"}, nil)

		// Act
		item, err := svc.Add(ctx, 7, "prod-1")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "wish-1", item.ID)
		assert.Equal(t, p, item.Product)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown product", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(repo, productRepo)

		productRepo.On("GetByID", ctx, "missing").Return(nil, nil)

		item, err := svc.Add(ctx, 7, "missing")

		assert.ErrorIs(t, err, product.ErrProductNotFound)
		assert.Nil(t, item)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(repo, productRepo)

		p := &product.Product{ID: "prod-1"}
		productRepo.On("GetByID", ctx, "prod-1").Return(p, nil)
		repo.On("Add", ctx, uint(7), "prod-1").Return(nil, ErrAlreadyWishlisted)

		item, err := svc.Add(ctx, 7, "prod-1")

		assert.ErrorIs(t, err, ErrAlreadyWishlisted)
		assert.Nil(t, item)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockProductRepository))

		repo.On("Remove", ctx, uint(7), "prod-1").Return(nil)

		assert.NoError(t, svc.Remove(ctx, 7, "prod-1"))
	})

	t.Run("Absent item", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockProductRepository))

		repo.On("Remove", ctx, uint(7), "prod-9").Return(ErrItemNotFound)

		assert.ErrorIs(t, svc.Remove(ctx, 7, "prod-9"), ErrItemNotFound)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns saved items", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockProductRepository))

		items := []*Item{
			{ID: "wish-1", ProductID: "prod-1", Product: &product.Product{ID: "prod-1"}},
		}
		repo.On("ListByUser", ctx, uint(7)).Return(items, nil)

		got, err := svc.List(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, items, got)
	})
}
