package httpapi

import (
	"net/http"

	"atelier-be/internal/metrics"
	"atelier-be/internal/transport"
)

type healthResponse struct {
	Status        string `json:"status"`
	RequestsTotal uint64 `json:"requests_total"`
	RequestErrors uint64 `json:"request_errors"`
	OrdersPlaced  uint64 `json:"orders_placed"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			transport.RespondError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}

	transport.RespondJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		RequestsTotal: metrics.RequestsTotal.Load(),
		RequestErrors: metrics.RequestErrors.Load(),
		OrdersPlaced:  metrics.OrdersPlaced.Load(),
	})
}
