package order

import (
	"context"
	"time"

	"atelier-be/internal/cart"
	"atelier-be/internal/lock"
	"atelier-be/internal/logger"
	"atelier-be/internal/metrics"

	"go.uber.org/zap"
)

// checkoutLockTTL bounds how long a crashed checkout can block its owner.
const checkoutLockTTL = 30 * time.Second

type Service interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	GetDetail(ctx context.Context, requesterID uint, orderID string) (*Order, error)
}

type service struct {
	repo     Repository
	cartRepo cart.Repository
	locker   lock.Locker
}

func NewService(repo Repository, cartRepo cart.Repository, locker lock.Locker) Service {
	return &service{
		repo:     repo,
		cartRepo: cartRepo,
		locker:   locker,
	}
}

// PlaceOrder turns the owner's cart into a pending order. The payment method
// is recorded, not charged. Duplicate submissions are rejected by the
// per-owner lock; replays carrying the same idempotency key get the original
// order back.
func (s *service) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.String("owner_key", params.OwnerKey),
	)

	// 1. One checkout per owner at a time
	if err := s.locker.Acquire(ctx, params.OwnerKey, checkoutLockTTL); err != nil {
		if err == lock.ErrAlreadyLocked {
			log.Warn("concurrent checkout rejected")
			return nil, ErrCheckoutInProgress
		}
		return nil, err
	}
	defer s.locker.Release(ctx, params.OwnerKey)

	// 2. Idempotency-key replay
	if params.IdempotencyKey != nil && *params.IdempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, params.OwnerKey, *params.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			log.Info("idempotent replay, returning existing order",
				zap.String("order_id", existing.ID),
			)
			return existing, nil
		}
	}

	// 3. Snapshot the cart
	lines, err := s.cartRepo.GetCartRows(ctx, params.OwnerKey)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	// 4. Totals
	totals := ComputeTotals(lines)

	o := &Order{
		UserID:         params.UserID,
		OwnerKey:       params.OwnerKey,
		Status:         StatusPending,
		Subtotal:       totals.Subtotal,
		ShippingCost:   totals.Shipping,
		TaxAmount:      totals.Tax,
		TotalAmount:    totals.Total,
		PaymentMethod:  params.PaymentMethod,
		IdempotencyKey: params.IdempotencyKey,
	}

	// 5. Order + lines + addresses + cart clear, atomically
	if err := s.repo.CreateOrderTx(ctx, o, lines, params.ShippingAddress, params.BillingAddress); err != nil {
		return nil, err
	}

	metrics.OrdersPlaced.Inc()

	log.Info("checkout completed",
		zap.String("order_id", o.ID),
		zap.Float64("total", o.TotalAmount),
	)

	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetDetail returns the order only to its owner.
func (s *service) GetDetail(ctx context.Context, requesterID uint, orderID string) (*Order, error) {
	o, err := s.repo.GetDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.UserID == nil || *o.UserID != requesterID {
		return nil, ErrForbidden
	}

	return o, nil
}
