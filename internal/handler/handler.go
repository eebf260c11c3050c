// Package handler implements the HTTP endpoints of the ledger API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/logger"
	"github.com/salesledger/api/internal/money"
	"github.com/salesledger/api/internal/service"
	"github.com/salesledger/api/internal/validate"
)

// Publisher broadcasts change events to live subscribers of a date.
// Satisfied by *ws.Hub.
type Publisher interface {
	Publish(date, eventType string, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, string, any) {}

func publisherOrNop(p Publisher) Publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

// --- Shared response types ---

type validationResponse struct {
	Error  string                `json:"error"`
	Fields []validate.FieldError `json:"fields"`
}

type salespersonResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toSalespersonResponse(s database.Salesperson) salespersonResponse {
	return salespersonResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     textPtr(s.Email),
		CreatedAt: s.CreatedAt,
	}
}

type salesEntryResponse struct {
	ID               uuid.UUID                `json:"id"`
	Date             string                   `json:"date"`
	SalespersonID    uuid.UUID                `json:"salesperson_id"`
	SalespersonName  string                   `json:"salesperson_name,omitempty"`
	CashCollected    string                   `json:"cash_collected"`
	PhonepeCollected string                   `json:"phonepe_collected"`
	Expenses         string                   `json:"expenses"`
	Net              string                   `json:"net"`
	Notes            *string                  `json:"notes"`
	CreatedAt        time.Time                `json:"created_at"`
	IndividualSales  []individualSaleResponse `json:"individual_sales,omitempty"`
}

func toSalesEntryResponse(e database.SalesEntry, salespersonName string) salesEntryResponse {
	cash := money.FromNumeric(e.CashCollected)
	phonepe := money.FromNumeric(e.PhonepeCollected)
	expenses := money.FromNumeric(e.Expenses)
	return salesEntryResponse{
		ID:               e.ID,
		Date:             formatDate(e.EntryDate),
		SalespersonID:    e.SalespersonID,
		SalespersonName:  salespersonName,
		CashCollected:    cash.StringFixed(2),
		PhonepeCollected: phonepe.StringFixed(2),
		Expenses:         expenses.StringFixed(2),
		Net:              money.Net(cash, phonepe, expenses).StringFixed(2),
		Notes:            textPtr(e.Notes),
		CreatedAt:        e.CreatedAt,
	}
}

func toEntryListResponse(entries []service.EntryWithSalesperson) []salesEntryResponse {
	out := make([]salesEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = toSalesEntryResponse(e.Entry, e.SalespersonName)
	}
	return out
}

type individualSaleResponse struct {
	ID            uuid.UUID `json:"id"`
	SalesEntryID  uuid.UUID `json:"sales_entry_id"`
	CustomerName  string    `json:"customer_name"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

func toIndividualSaleResponse(s database.IndividualSale) individualSaleResponse {
	return individualSaleResponse{
		ID:            s.ID,
		SalesEntryID:  s.SalesEntryID,
		CustomerName:  s.CustomerName,
		Amount:        money.String(s.Amount),
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     s.CreatedAt,
	}
}

type totalsResponse struct {
	CashCollected    string `json:"cash_collected"`
	PhonepeCollected string `json:"phonepe_collected"`
	Expenses         string `json:"expenses"`
	Net              string `json:"net"`
	EntryCount       int64  `json:"entry_count"`
}

func toTotalsResponse(t service.Totals) totalsResponse {
	return totalsResponse{
		CashCollected:    t.Cash.StringFixed(2),
		PhonepeCollected: t.Phonepe.StringFixed(2),
		Expenses:         t.Expenses.StringFixed(2),
		Net:              t.Net.StringFixed(2),
		EntryCount:       t.EntryCount,
	}
}

type salespersonTotalsResponse struct {
	SalespersonID   uuid.UUID `json:"salesperson_id"`
	SalespersonName string    `json:"salesperson_name"`
	totalsResponse
}

func toSalespersonTotalsResponse(rows []service.SalespersonTotals) []salespersonTotalsResponse {
	out := make([]salespersonTotalsResponse, len(rows))
	for i, r := range rows {
		out[i] = salespersonTotalsResponse{
			SalespersonID:   r.SalespersonID,
			SalespersonName: r.SalespersonName,
			totalsResponse:  toTotalsResponse(r.Totals),
		}
	}
	return out
}

type dailySummaryResponse struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	OpeningCash     string    `json:"opening_cash"`
	TotalSales      string    `json:"total_sales"`
	TotalCollection string    `json:"total_collection"`
	ClosingBalance  string    `json:"closing_balance"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toDailySummaryResponse(s *database.DailySummary) *dailySummaryResponse {
	if s == nil {
		return nil
	}
	return &dailySummaryResponse{
		ID:              s.ID,
		Date:            formatDate(s.SummaryDate),
		OpeningCash:     money.String(s.OpeningCash),
		TotalSales:      money.String(s.TotalSales),
		TotalCollection: money.String(s.TotalCollection),
		ClosingBalance:  money.String(s.ClosingBalance),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.LogError("handler", "encode_response", nil, err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps validation and service errors onto HTTP statuses.
// action completes the "failed to ..." message of a 500 response.
func writeServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, validationResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, service.ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSalespersonNotFound), errors.Is(err, service.ErrSalesEntryNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSalespersonInUse):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.LogError("handler", action, r.Method+" "+r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "failed to " + action,
			"detail": err.Error(),
		})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathDate parses the {date} URL parameter, writing a 400 on failure.
func pathDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	return parseDateParam(w, "date", chi.URLParam(r, "date"))
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sales entry ID")
		return uuid.Nil, false
	}
	return id, true
}

func parseDateParam(w http.ResponseWriter, name, value string) (time.Time, bool) {
	if value == "" {
		writeError(w, http.StatusBadRequest, name+" is required")
		return time.Time{}, false
	}
	d, err := validate.ParseDate(value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name+": must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return d, true
}

// rangeFilter reads from_date, to_date and the optional salesperson_id query parameters.
func rangeFilter(w http.ResponseWriter, r *http.Request) (service.RangeFilter, bool) {
	q := r.URL.Query()
	from, ok := parseDateParam(w, "from_date", q.Get("from_date"))
	if !ok {
		return service.RangeFilter{}, false
	}
	to, ok := parseDateParam(w, "to_date", q.Get("to_date"))
	if !ok {
		return service.RangeFilter{}, false
	}
	f := service.RangeFilter{From: from, To: to}
	if raw := strings.TrimSpace(q.Get("salesperson_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid salesperson_id")
			return service.RangeFilter{}, false
		}
		f.SalespersonID = &id
	}
	return f, true
}

func formatDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(validate.DateLayout)
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}
