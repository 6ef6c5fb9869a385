package httpapi

import (
	"net/http"

	"atelier-be/internal/transport"
	"atelier-be/internal/utils"
)

// ListAddresses returns the addresses captured by past checkouts, for the
// account page.
func (h *Handler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		transport.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	addresses, err := h.addresses.ListByUser(r.Context(), userID)
	if err != nil {
		transport.RespondInternal(w, r, err)
		return
	}

	transport.RespondJSON(w, http.StatusOK, addresses)
}
