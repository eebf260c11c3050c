package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/enum"
	"github.com/salesledger/api/internal/export"
	"github.com/salesledger/api/internal/service"
	"github.com/salesledger/api/internal/validate"
)

// SalespersonLookup resolves a salesperson by id.
// Satisfied by *database.Queries.
type SalespersonLookup interface {
	GetSalesperson(ctx context.Context, id uuid.UUID) (database.Salesperson, error)
}

// ExportHandler renders reports as CSV, TSV, XLSX or PDF downloads.
type ExportHandler struct {
	reports  ReportServicer
	lookup   SalespersonLookup
	currency string
	now      func() time.Time
}

func NewExportHandler(reports ReportServicer, lookup SalespersonLookup, currency string) *ExportHandler {
	return &ExportHandler{reports: reports, lookup: lookup, currency: currency, now: time.Now}
}

// RegisterRoutes registers export endpoints. Expected to be mounted under /api.
func (h *ExportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/exports/sales-entries", h.SalesEntries)
	r.Get("/exports/daily-report", h.DailyReport)
}

// --- Handlers ---

func (h *ExportHandler) SalesEntries(w http.ResponseWriter, r *http.Request) {
	format, ok := exportFormat(w, r)
	if !ok {
		return
	}
	f, ok := rangeFilter(w, r)
	if !ok {
		return
	}

	var name string
	if f.SalespersonID != nil {
		sp, err := h.lookup.GetSalesperson(r.Context(), *f.SalespersonID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				err = service.ErrSalespersonNotFound
			}
			writeServiceError(w, r, "export sales entries", err)
			return
		}
		name = sp.Name
	}

	report, err := h.reports.RangeReport(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, "export sales entries", err)
		return
	}

	sheet := export.SalesRecords(report, name, h.currency, h.now())
	filename := fmt.Sprintf("sales-records_%s_to_%s", f.From.Format(validate.DateLayout), f.To.Format(validate.DateLayout))
	h.send(w, r, sheet, format, filename)
}

func (h *ExportHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	format, ok := exportFormat(w, r)
	if !ok {
		return
	}
	date, ok := parseDateParam(w, "date", r.URL.Query().Get("date"))
	if !ok {
		return
	}

	report, err := h.reports.DailyReport(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, "export daily report", err)
		return
	}

	sheet := export.DailyReport(report, h.currency, h.now())
	h.send(w, r, sheet, format, "daily-report_"+date.Format(validate.DateLayout))
}

// --- Helpers ---

// send renders into a buffer first so a rendering failure can still produce a JSON error.
func (h *ExportHandler) send(w http.ResponseWriter, r *http.Request, sheet export.Sheet, format, filename string) {
	var buf bytes.Buffer
	if err := export.Write(&buf, sheet, format); err != nil {
		writeServiceError(w, r, "render export", err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, filename, format))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

func exportFormat(w http.ResponseWriter, r *http.Request) (string, bool) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		return enum.ExportFormatCSV, true
	}
	if !slices.Contains(export.Formats, format) {
		writeError(w, http.StatusBadRequest, "invalid format: must be one of "+strings.Join(export.Formats, ", "))
		return "", false
	}
	return format, true
}
