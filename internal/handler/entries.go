package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/enum"
	"github.com/salesledger/api/internal/service"
	"github.com/salesledger/api/internal/validate"
)

// EntryServicer defines the service methods needed by sales entry handlers.
// Satisfied by *service.EntryService; narrow interface for testability.
type EntryServicer interface {
	Create(ctx context.Context, in validate.SalesEntry) (*service.CreateEntryResult, error)
	Get(ctx context.Context, id uuid.UUID) (database.SalesEntry, error)
	CreateIndividualSale(ctx context.Context, entryID uuid.UUID, in validate.IndividualSale) (database.IndividualSale, error)
	ListIndividualSales(ctx context.Context, entryID uuid.UUID) ([]database.IndividualSale, error)
	Delete(ctx context.Context, id uuid.UUID) (database.SalesEntry, error)
	ListByDate(ctx context.Context, date time.Time) ([]service.EntryWithSalesperson, error)
	ListInRange(ctx context.Context, f service.RangeFilter) ([]service.EntryWithSalesperson, error)
}

// EntryHandler handles sales entry and individual sale endpoints.
type EntryHandler struct {
	svc EntryServicer
	val *validate.Validator
	pub Publisher
}

// NewEntryHandler creates an EntryHandler. pub may be nil.
func NewEntryHandler(svc EntryServicer, val *validate.Validator, pub Publisher) *EntryHandler {
	return &EntryHandler{svc: svc, val: val, pub: publisherOrNop(pub)}
}

// RegisterRoutes registers sales entry endpoints. Expected to be mounted under /api.
func (h *EntryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/sales-entries", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.ListInRange)
		r.Get("/date/{date}", h.ListByDate)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/individual-sales", h.CreateIndividualSale)
		r.Get("/{id}/individual-sales", h.ListIndividualSales)
	})
}

// --- Handlers ---

// Create stores an entry together with any individual sales submitted inline.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req validate.SalesEntryInput
	if !decodeJSON(w, r, &req) {
		return
	}

	in, err := h.val.SalesEntry(req)
	if err != nil {
		writeServiceError(w, r, "create sales entry", err)
		return
	}

	result, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, "create sales entry", err)
		return
	}

	resp := toSalesEntryResponse(result.Entry, "")
	resp.IndividualSales = make([]individualSaleResponse, len(result.IndividualSales))
	for i, s := range result.IndividualSales {
		resp.IndividualSales[i] = toIndividualSaleResponse(s)
	}

	h.pub.Publish(resp.Date, enum.EventSalesEntryCreated, resp)
	writeJSON(w, http.StatusCreated, resp)
}

func (h *EntryHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.ListByDate(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, "list sales entries", err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryListResponse(entries))
}

// ListInRange returns entries with from_date <= date <= to_date, newest first.
func (h *EntryHandler) ListInRange(w http.ResponseWriter, r *http.Request) {
	f, ok := rangeFilter(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.ListInRange(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, "list sales entries", err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryListResponse(entries))
}

// Get returns one entry with its individual sales.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get sales entry", err)
		return
	}
	sales, err := h.svc.ListIndividualSales(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "list individual sales", err)
		return
	}

	resp := toSalesEntryResponse(entry, "")
	resp.IndividualSales = make([]individualSaleResponse, len(sales))
	for i, s := range sales {
		resp.IndividualSales[i] = toIndividualSaleResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete removes an entry and all of its individual sales.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "delete sales entry", err)
		return
	}

	h.pub.Publish(formatDate(deleted.EntryDate), enum.EventSalesEntryDeleted, map[string]uuid.UUID{"id": deleted.ID})
	w.WriteHeader(http.StatusNoContent)
}

func (h *EntryHandler) CreateIndividualSale(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req validate.IndividualSaleInput
	if !decodeJSON(w, r, &req) {
		return
	}

	in, err := h.val.IndividualSale(req)
	if err != nil {
		writeServiceError(w, r, "create individual sale", err)
		return
	}

	sale, err := h.svc.CreateIndividualSale(r.Context(), entryID, in)
	if err != nil {
		writeServiceError(w, r, "create individual sale", err)
		return
	}

	resp := toIndividualSaleResponse(sale)
	if entry, err := h.svc.Get(r.Context(), entryID); err == nil {
		h.pub.Publish(formatDate(entry.EntryDate), enum.EventIndividualSaleCreated, resp)
	}
	writeJSON(w, http.StatusCreated, resp)
}

// ListIndividualSales returns an entry's sales, most recent first.
// An unknown entry yields an empty list.
func (h *EntryHandler) ListIndividualSales(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(w, r)
	if !ok {
		return
	}

	sales, err := h.svc.ListIndividualSales(r.Context(), entryID)
	if err != nil {
		writeServiceError(w, r, "list individual sales", err)
		return
	}

	resp := make([]individualSaleResponse, len(sales))
	for i, s := range sales {
		resp[i] = toIndividualSaleResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}
