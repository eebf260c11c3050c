package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/validate"
)

// SalespersonServicer defines the service methods needed by salesperson handlers.
// Satisfied by *service.SalespersonService; narrow interface for testability.
type SalespersonServicer interface {
	Create(ctx context.Context, in validate.Salesperson) (database.Salesperson, error)
	List(ctx context.Context) ([]database.Salesperson, error)
	SeedDefaults(ctx context.Context) ([]database.Salesperson, error)
	Clear(ctx context.Context) (int64, error)
}

// SalespersonHandler handles salesperson endpoints.
type SalespersonHandler struct {
	svc SalespersonServicer
	val *validate.Validator
}

func NewSalespersonHandler(svc SalespersonServicer, val *validate.Validator) *SalespersonHandler {
	return &SalespersonHandler{svc: svc, val: val}
}

// RegisterRoutes registers salesperson endpoints. Expected to be mounted under /api.
func (h *SalespersonHandler) RegisterRoutes(r chi.Router) {
	r.Get("/salespersons", h.List)
	r.Post("/salespersons", h.Create)
	r.Delete("/salespersons", h.Clear)
	r.Post("/init", h.Init)
}

// --- Handlers ---

func (h *SalespersonHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "list salespersons", err)
		return
	}

	resp := make([]salespersonResponse, len(rows))
	for i, s := range rows {
		resp[i] = toSalespersonResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *SalespersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req validate.SalespersonInput
	if !decodeJSON(w, r, &req) {
		return
	}

	in, err := h.val.Salesperson(req)
	if err != nil {
		writeServiceError(w, r, "create salesperson", err)
		return
	}

	s, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, "create salesperson", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSalespersonResponse(s))
}

// Init seeds the default salespersons when none exist yet.
func (h *SalespersonHandler) Init(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.SeedDefaults(r.Context())
	if err != nil {
		writeServiceError(w, r, "initialize salespersons", err)
		return
	}

	resp := make([]salespersonResponse, len(created))
	for i, s := range created {
		resp[i] = toSalespersonResponse(s)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"created":      len(created) > 0,
		"salespersons": resp,
	})
}

// Clear removes every salesperson. Fails with 409 while any is referenced by an entry.
func (h *SalespersonHandler) Clear(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Clear(r.Context())
	if err != nil {
		writeServiceError(w, r, "clear salespersons", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}
