package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/enum"
	"github.com/salesledger/api/internal/service"
	"github.com/salesledger/api/internal/validate"
)

// ReportServicer defines the aggregation methods needed by report handlers.
// Satisfied by *service.ReportService.
type ReportServicer interface {
	DailyTotals(ctx context.Context, date time.Time) (service.Totals, error)
	SalespersonTotals(ctx context.Context, date time.Time) ([]service.SalespersonTotals, error)
	DailyReport(ctx context.Context, date time.Time) (*service.DailyReport, error)
	RangeReport(ctx context.Context, f service.RangeFilter) (*service.RangeReport, error)
}

// ReconciliationServicer defines the daily summary methods.
// Satisfied by *service.ReconciliationService.
type ReconciliationServicer interface {
	Save(ctx context.Context, date time.Time, in validate.DailySummary) (database.DailySummary, error)
	Get(ctx context.Context, date time.Time) (*database.DailySummary, error)
}

// ReportHandler serves totals, reconciliation records and dashboard reports.
type ReportHandler struct {
	reports ReportServicer
	recon   ReconciliationServicer
	val     *validate.Validator
	pub     Publisher
}

// NewReportHandler creates a ReportHandler. pub may be nil.
func NewReportHandler(reports ReportServicer, recon ReconciliationServicer, val *validate.Validator, pub Publisher) *ReportHandler {
	return &ReportHandler{reports: reports, recon: recon, val: val, pub: publisherOrNop(pub)}
}

// RegisterRoutes registers report endpoints. Expected to be mounted under /api.
func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/daily-totals/{date}", h.DailyTotals)
	r.Get("/salesperson-totals/{date}", h.SalespersonTotals)
	r.Put("/daily-summaries/{date}", h.SaveDailySummary)
	r.Get("/daily-summaries/{date}", h.GetDailySummary)
	r.Get("/reports/daily", h.DailyReport)
	r.Get("/reports/range", h.RangeReport)
}

// --- Response types ---

type dailyTotalsResponse struct {
	Date string `json:"date"`
	totalsResponse
}

type dailySummaryEnvelope struct {
	Date    string                `json:"date"`
	Summary *dailySummaryResponse `json:"summary"`
}

type dailyReportResponse struct {
	Date         string                      `json:"date"`
	Totals       totalsResponse              `json:"totals"`
	Salespersons []salespersonTotalsResponse `json:"salespersons"`
	Entries      []salesEntryResponse        `json:"entries"`
	Summary      *dailySummaryResponse       `json:"summary"`
}

type rangeReportResponse struct {
	FromDate      string               `json:"from_date"`
	ToDate        string               `json:"to_date"`
	SalespersonID *string              `json:"salesperson_id"`
	Totals        totalsResponse       `json:"totals"`
	Entries       []salesEntryResponse `json:"entries"`
}

// --- Handlers ---

// DailyTotals sums every entry on the date. A date without entries yields zeros.
func (h *ReportHandler) DailyTotals(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	t, err := h.reports.DailyTotals(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, "compute daily totals", err)
		return
	}
	writeJSON(w, http.StatusOK, dailyTotalsResponse{
		Date:           date.Format(validate.DateLayout),
		totalsResponse: toTotalsResponse(t),
	})
}

func (h *ReportHandler) SalespersonTotals(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	rows, err := h.reports.SalespersonTotals(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, "compute salesperson totals", err)
		return
	}
	writeJSON(w, http.StatusOK, toSalespersonTotalsResponse(rows))
}

// SaveDailySummary creates or overwrites the date's reconciliation record.
// The closing balance is always derived from the three inputs.
func (h *ReportHandler) SaveDailySummary(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	var req validate.DailySummaryInput
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := h.val.DailySummary(req)
	if err != nil {
		writeServiceError(w, r, "save daily summary", err)
		return
	}

	saved, err := h.recon.Save(r.Context(), date, in)
	if err != nil {
		writeServiceError(w, r, "save daily summary", err)
		return
	}

	resp := toDailySummaryResponse(&saved)
	h.pub.Publish(resp.Date, enum.EventDailySummarySaved, resp)
	writeJSON(w, http.StatusOK, resp)
}

// GetDailySummary returns {"date": ..., "summary": null} when nothing was saved for the date.
func (h *ReportHandler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	s, err := h.recon.Get(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, "get daily summary", err)
		return
	}
	writeJSON(w, http.StatusOK, dailySummaryEnvelope{
		Date:    date.Format(validate.DateLayout),
		Summary: toDailySummaryResponse(s),
	})
}

func (h *ReportHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(w, "date", r.URL.Query().Get("date"))
	if !ok {
		return
	}

	report, err := h.reports.DailyReport(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, "build daily report", err)
		return
	}
	writeJSON(w, http.StatusOK, dailyReportResponse{
		Date:         date.Format(validate.DateLayout),
		Totals:       toTotalsResponse(report.Totals),
		Salespersons: toSalespersonTotalsResponse(report.Salespersons),
		Entries:      toEntryListResponse(report.Entries),
		Summary:      toDailySummaryResponse(report.Summary),
	})
}

func (h *ReportHandler) RangeReport(w http.ResponseWriter, r *http.Request) {
	f, ok := rangeFilter(w, r)
	if !ok {
		return
	}

	report, err := h.reports.RangeReport(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, "build range report", err)
		return
	}

	resp := rangeReportResponse{
		FromDate: f.From.Format(validate.DateLayout),
		ToDate:   f.To.Format(validate.DateLayout),
		Totals:   toTotalsResponse(report.Totals),
		Entries:  toEntryListResponse(report.Entries),
	}
	if f.SalespersonID != nil {
		id := f.SalespersonID.String()
		resp.SalespersonID = &id
	}
	writeJSON(w, http.StatusOK, resp)
}
