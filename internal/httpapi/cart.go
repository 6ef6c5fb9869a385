package httpapi

import (
	"errors"
	"net/http"

	"atelier-be/internal/cart"
	"atelier-be/internal/product"
	"atelier-be/internal/transport"
)

type cartMutationRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type successBody struct {
	Success bool `json:"success"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	key := h.sessions.Resolve(w, r)

	items, err := h.carts.Get(r.Context(), key.Value)
	if err != nil {
		transport.RespondInternal(w, r, err)
		return
	}

	transport.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	key := h.sessions.Resolve(w, r)

	var req cartMutationRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProductID == "" {
		transport.RespondError(w, http.StatusBadRequest, "productId is required")
		return
	}

	if _, err := h.carts.Add(r.Context(), key.Value, req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			transport.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, product.ErrProductNotFound):
			transport.RespondError(w, http.StatusNotFound, err.Error())
		default:
			transport.RespondInternal(w, r, err)
		}
		return
	}

	transport.RespondJSON(w, http.StatusOK, successBody{Success: true})
}

func (h *Handler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	key := h.sessions.Resolve(w, r)

	var req cartMutationRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProductID == "" {
		transport.RespondError(w, http.StatusBadRequest, "productId is required")
		return
	}

	if err := h.carts.UpdateQuantity(r.Context(), key.Value, req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			transport.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, cart.ErrLineNotFound):
			transport.RespondError(w, http.StatusNotFound, err.Error())
		default:
			transport.RespondInternal(w, r, err)
		}
		return
	}

	transport.RespondJSON(w, http.StatusOK, successBody{Success: true})
}

func (h *Handler) DeleteFromCart(w http.ResponseWriter, r *http.Request) {
	key := h.sessions.Resolve(w, r)

	q := r.URL.Query()
	if q.Get("clearAll") == "true" {
		if err := h.carts.Clear(r.Context(), key.Value); err != nil {
			transport.RespondInternal(w, r, err)
			return
		}
		transport.RespondJSON(w, http.StatusOK, successBody{Success: true})
		return
	}

	productID := q.Get("productId")
	if productID == "" {
		transport.RespondError(w, http.StatusBadRequest, "productId or clearAll is required")
		return
	}

	if err := h.carts.Remove(r.Context(), key.Value, productID); err != nil {
		transport.RespondInternal(w, r, err)
		return
	}

	transport.RespondJSON(w, http.StatusOK, successBody{Success: true})
}
