package main

import (
	"log"
	"net/http"

	"atelier-be/internal/address"
	"atelier-be/internal/cart"
	"atelier-be/internal/config"
	"atelier-be/internal/db"
	"atelier-be/internal/httpapi"
	"atelier-be/internal/lock"
	"atelier-be/internal/logger"
	"atelier-be/internal/middleware"
	"atelier-be/internal/order"
	"atelier-be/internal/product"
	"atelier-be/internal/session"
	"atelier-be/internal/user"
	"atelier-be/internal/wishlist"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	// Redis backs the checkout lock; without it a single-process lock is used.
	var checkoutLock lock.Locker
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		checkoutLock = lock.NewRedisLocker(rdb)
	} else {
		checkoutLock = lock.NewLocalLocker()
	}

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	addressRepo := address.NewRepository(database)

	orderRepo := order.NewRepository(database, addressRepo)
	orderSvc := order.NewService(orderRepo, cartRepo, checkoutLock)

	wishlistRepo := wishlist.NewRepository(database)
	wishlistSvc := wishlist.NewService(wishlistRepo, productRepo)

	isProd := cfg.AppEnv == "production"

	handler := httpapi.NewHandler(httpapi.Config{
		DB:            database,
		Sessions:      &session.Resolver{Secure: isProd},
		Products:      productSvc,
		Carts:         cartSvc,
		Orders:        orderSvc,
		Users:         userSvc,
		Wishlists:     wishlistSvc,
		Addresses:     addressRepo,
		SecureCookies: isProd,
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	chain := buildMiddlewareChain(mux)

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, chain))
}

// buildMiddlewareChain wraps the router. Auth runs before the rate limiter so
// the limiter can key authenticated callers by user id rather than by IP.
func buildMiddlewareChain(next http.Handler) http.Handler {
	return logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.AuthMiddleware(
				middleware.RateLimitMiddleware(next),
			),
		),
	)
}
