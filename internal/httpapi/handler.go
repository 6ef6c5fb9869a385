package httpapi

import (
	"database/sql"
	"net/http"

	"atelier-be/internal/address"
	"atelier-be/internal/cart"
	"atelier-be/internal/order"
	"atelier-be/internal/product"
	"atelier-be/internal/session"
	"atelier-be/internal/user"
	"atelier-be/internal/wishlist"
)

// Handler wires the domain services to the HTTP surface.
type Handler struct {
	db            *sql.DB
	sessions      *session.Resolver
	products      product.Service
	carts         cart.Service
	orders        order.Service
	users         user.Service
	wishlists     wishlist.Service
	addresses     address.Repository
	secureCookies bool
}

type Config struct {
	DB        *sql.DB
	Sessions  *session.Resolver
	Products  product.Service
	Carts     cart.Service
	Orders    order.Service
	Users     user.Service
	Wishlists wishlist.Service
	Addresses address.Repository

	// SecureCookies controls the Secure flag on auth cookies.
	SecureCookies bool
}

func NewHandler(cfg Config) *Handler {
	return &Handler{
		db:            cfg.DB,
		sessions:      cfg.Sessions,
		products:      cfg.Products,
		carts:         cfg.Carts,
		orders:        cfg.Orders,
		users:         cfg.Users,
		wishlists:     cfg.Wishlists,
		addresses:     cfg.Addresses,
		secureCookies: cfg.SecureCookies,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", h.GetProduct)

	mux.HandleFunc("GET /api/cart", h.GetCart)
	mux.HandleFunc("POST /api/cart", h.AddToCart)
	mux.HandleFunc("PUT /api/cart", h.UpdateCart)
	mux.HandleFunc("DELETE /api/cart", h.DeleteFromCart)

	mux.HandleFunc("POST /api/checkout", h.Checkout)

	mux.HandleFunc("POST /api/auth/signup", h.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/profile", h.Profile)

	mux.HandleFunc("GET /api/wishlist", h.ListWishlist)
	mux.HandleFunc("POST /api/wishlist", h.AddToWishlist)
	mux.HandleFunc("DELETE /api/wishlist", h.RemoveFromWishlist)

	mux.HandleFunc("GET /api/orders", h.ListOrders)
	mux.HandleFunc("GET /api/orders/{id}", h.GetOrder)

	mux.HandleFunc("GET /api/addresses", h.ListAddresses)
}
