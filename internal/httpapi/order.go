package httpapi

import (
	"errors"
	"net/http"

	"atelier-be/internal/order"
	"atelier-be/internal/transport"
	"atelier-be/internal/utils"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		transport.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), userID)
	if err != nil {
		transport.RespondInternal(w, r, err)
		return
	}

	transport.RespondJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		transport.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	o, err := h.orders.GetDetail(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			transport.RespondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrForbidden):
			transport.RespondError(w, http.StatusForbidden, err.Error())
		default:
			transport.RespondInternal(w, r, err)
		}
		return
	}

	transport.RespondJSON(w, http.StatusOK, o)
}
