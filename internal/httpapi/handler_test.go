package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"

	"atelier-be/internal/address"
	"atelier-be/internal/cart"
	"atelier-be/internal/order"
	"atelier-be/internal/product"
	"atelier-be/internal/session"
	"atelier-be/internal/user"
	"atelier-be/internal/utils"
	"atelier-be/internal/wishlist"

	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock of product.Service
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, opts product.ListOptions) ([]*product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

// MockCartService is a mock of cart.Service
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, ownerKey string) ([]*cart.Item, error) {
	args := m.Called(ctx, ownerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Item), args.Error(1)
}

func (m *MockCartService) Add(ctx context.Context, ownerKey, productID string, quantity int) (*cart.Item, error) {
	args := m.Called(ctx, ownerKey, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Item), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, ownerKey, productID string, quantity int) error {
	args := m.Called(ctx, ownerKey, productID, quantity)
	return args.Error(0)
}

func (m *MockCartService) Remove(ctx context.Context, ownerKey, productID string) error {
	args := m.Called(ctx, ownerKey, productID)
	return args.Error(0)
}

func (m *MockCartService) Clear(ctx context.Context, ownerKey string) error {
	args := m.Called(ctx, ownerKey)
	return args.Error(0)
}

func (m *MockCartService) MergeInto(ctx context.Context, fromKey, toKey string) error {
	args := m.Called(ctx, fromKey, toKey)
	return args.Error(0)
}

// MockOrderService is a mock of order.Service
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, params order.PlaceOrderParams) (*order.Order, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListByUser(ctx context.Context, userID uint) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) GetDetail(ctx context.Context, requesterID uint, orderID string) (*order.Order, error) {
	args := m.Called(ctx, requesterID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// MockUserService is a mock of user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, params user.RegisterParams) (string, user.User, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) Profile(ctx context.Context, userID uint) (user.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.User), args.Error(1)
}

// MockWishlistService is a mock of wishlist.Service
type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) List(ctx context.Context, userID uint) ([]*wishlist.Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*wishlist.Item), args.Error(1)
}

func (m *MockWishlistService) Add(ctx context.Context, userID uint, productID string) (*wishlist.Item, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wishlist.Item), args.Error(1)
}

func (m *MockWishlistService) Remove(ctx context.Context, userID uint, productID string) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

// MockAddressRepository is a mock of address.Repository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) CreateTx(ctx context.Context, tx *sql.Tx, userID *uint, typ address.Type, in address.Input) (string, error) {
	args := m.Called(ctx, tx, userID, typ, in)
	return args.String(0), args.Error(1)
}

func (m *MockAddressRepository) ListByUser(ctx context.Context, userID uint) ([]*address.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*address.Address), args.Error(1)
}

type testEnv struct {
	mux       *http.ServeMux
	products  *MockProductService
	carts     *MockCartService
	orders    *MockOrderService
	users     *MockUserService
	wishlists *MockWishlistService
	addresses *MockAddressRepository
}

func newTestEnv() *testEnv {
	env := &testEnv{
		products:  new(MockProductService),
		carts:     new(MockCartService),
		orders:    new(MockOrderService),
		users:     new(MockUserService),
		wishlists: new(MockWishlistService),
		addresses: new(MockAddressRepository),
	}

	h := NewHandler(Config{
		Sessions:  &session.Resolver{},
		Products:  env.products,
		Carts:     env.carts,
		Orders:    env.orders,
		Users:     env.users,
		Wishlists: env.wishlists,
		Addresses: env.addresses,
	})

	env.mux = http.NewServeMux()
	h.RegisterRoutes(env.mux)

	return env
}

func (e *testEnv) do(r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, r)
	return w
}

// asUser attaches authenticated-user context the way the auth middleware does.
func asUser(r *http.Request, userID uint, email string) *http.Request {
	return r.WithContext(utils.SetUserContext(r.Context(), userID, email))
}

func withSessionCookie(r *http.Request, sessionID string) *http.Request {
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})
	return r
}
