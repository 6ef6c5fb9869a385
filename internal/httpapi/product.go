package httpapi

import (
	"errors"
	"net/http"

	"atelier-be/internal/product"
	"atelier-be/internal/transport"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := product.ListOptions{
		FeaturedOnly: q.Get("featured") == "true",
		Search:       q.Get("search"),
		Category:     q.Get("category"),
	}

	products, err := h.products.List(r.Context(), opts)
	if err != nil {
		transport.RespondInternal(w, r, err)
		return
	}

	transport.RespondJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			transport.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		transport.RespondInternal(w, r, err)
		return
	}

	transport.RespondJSON(w, http.StatusOK, p)
}
