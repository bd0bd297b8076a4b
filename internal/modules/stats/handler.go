package stats

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agromarket/agromarket-backend/internal/modules/auth"
)

// Handler exposes the vendor sales and statistics endpoints. The vendor is
// always the authenticated user; there is no way to read another vendor's
// sales.
type Handler struct{ service *Service }

func NewHandler(service *Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, authMW func(http.Handler) http.Handler) {
	r.Route("/api/v1/vendor", func(r chi.Router) {
		r.Use(authMW)
		r.Get("/sales", h.listSales) // GET /api/v1/vendor/sales
		r.Get("/stats", h.getStats)  // GET /api/v1/vendor/stats?period=30
	})
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return
	}
	sales, err := h.service.LoadSales(r.Context(), identity.ID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if sales == nil {
		sales = []Sale{}
	}
	respond(w, http.StatusOK, sales)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return
	}

	periodDays := 30
	if p := r.URL.Query().Get("period"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			respond(w, http.StatusBadRequest, map[string]string{"error": "period must be a number of days"})
			return
		}
		periodDays = n
	}

	sales, err := h.service.LoadSales(r.Context(), identity.ID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, BuildMetrics(sales, time.Now(), periodDays))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
