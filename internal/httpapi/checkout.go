package httpapi

import (
	"errors"
	"net/http"

	"atelier-be/internal/address"
	"atelier-be/internal/order"
	"atelier-be/internal/transport"
)

type checkoutRequest struct {
	ShippingAddress *address.Input `json:"shippingAddress"`
	BillingAddress  *address.Input `json:"billingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	IdempotencyKey  string         `json:"idempotencyKey"`
}

type checkoutResponse struct {
	OrderID string  `json:"orderId"`
	Total   float64 `json:"total"`
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	key := h.sessions.Resolve(w, r)

	var req checkoutRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ShippingAddress == nil || !req.ShippingAddress.Valid() {
		transport.RespondError(w, http.StatusBadRequest, "shippingAddress is incomplete")
		return
	}
	if req.BillingAddress != nil && !req.BillingAddress.Valid() {
		transport.RespondError(w, http.StatusBadRequest, "billingAddress is incomplete")
		return
	}
	if req.PaymentMethod == "" {
		transport.RespondError(w, http.StatusBadRequest, "paymentMethod is required")
		return
	}

	params := order.PlaceOrderParams{
		OwnerKey:        key.Value,
		UserID:          key.UserID,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
	}
	// Header wins over the body field.
	idemKey := r.Header.Get("X-Idempotency-Key")
	if idemKey == "" {
		idemKey = req.IdempotencyKey
	}
	if idemKey != "" {
		params.IdempotencyKey = &idemKey
	}

	o, err := h.orders.PlaceOrder(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrCartEmpty):
			transport.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrCheckoutInProgress):
			transport.RespondError(w, http.StatusConflict, err.Error())
		default:
			transport.RespondInternal(w, r, err)
		}
		return
	}

	transport.RespondJSON(w, http.StatusCreated, checkoutResponse{
		OrderID: o.ID,
		Total:   o.TotalAmount,
	})
}
