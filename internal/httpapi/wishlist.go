package httpapi

import (
	"errors"
	"net/http"

	"atelier-be/internal/product"
	"atelier-be/internal/transport"
	"atelier-be/internal/utils"
	"atelier-be/internal/wishlist"
)

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) ListWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		transport.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.wishlists.List(r.Context(), userID)
	if err != nil {
		transport.RespondInternal(w, r, err)
		return
	}

	transport.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		transport.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req wishlistRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProductID == "" {
		transport.RespondError(w, http.StatusBadRequest, "productId is required")
		return
	}

	item, err := h.wishlists.Add(r.Context(), userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, wishlist.ErrAlreadyWishlisted):
			transport.RespondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, product.ErrProductNotFound):
			transport.RespondError(w, http.StatusNotFound, err.Error())
		default:
			transport.RespondInternal(w, r, err)
		}
		return
	}

	transport.RespondJSON(w, http.StatusCreated, item)
}

func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		transport.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	productID := r.URL.Query().Get("productId")
	if productID == "" {
		transport.RespondError(w, http.StatusBadRequest, "productId is required")
		return
	}

	if err := h.wishlists.Remove(r.Context(), userID, productID); err != nil {
		if errors.Is(err, wishlist.ErrItemNotFound) {
			transport.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		transport.RespondInternal(w, r, err)
		return
	}

	transport.RespondJSON(w, http.StatusOK, successBody{Success: true})
}
