package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/money"
	"github.com/shopspring/decimal"
)

// ReportStore defines the DB methods needed for aggregated reports.
// Satisfied by *database.Queries.
type ReportStore interface {
	GetDailyTotals(ctx context.Context, entryDate pgtype.Date) (database.GetDailyTotalsRow, error)
	ListSalespersonTotalsByDate(ctx context.Context, entryDate pgtype.Date) ([]database.ListSalespersonTotalsByDateRow, error)
	GetRangeTotals(ctx context.Context, arg database.GetRangeTotalsParams) (database.GetRangeTotalsRow, error)
	ListSalesEntriesByDate(ctx context.Context, entryDate pgtype.Date) ([]database.ListSalesEntriesByDateRow, error)
	ListSalesEntriesInRange(ctx context.Context, arg database.ListSalesEntriesInRangeParams) ([]database.ListSalesEntriesInRangeRow, error)
	GetDailySummaryByDate(ctx context.Context, summaryDate pgtype.Date) (database.DailySummary, error)
}

// Totals are summed collections for a scope. Net = Cash + Phonepe - Expenses.
type Totals struct {
	Cash       decimal.Decimal
	Phonepe    decimal.Decimal
	Expenses   decimal.Decimal
	Net        decimal.Decimal
	EntryCount int64
}

func newTotals(cash, phonepe, expenses pgtype.Numeric, count int64) Totals {
	t := Totals{
		Cash:       money.FromNumeric(cash),
		Phonepe:    money.FromNumeric(phonepe),
		Expenses:   money.FromNumeric(expenses),
		EntryCount: count,
	}
	t.Net = money.Net(t.Cash, t.Phonepe, t.Expenses)
	return t
}

// SalespersonTotals are one salesperson's totals for a date.
type SalespersonTotals struct {
	SalespersonID   uuid.UUID
	SalespersonName string
	Totals
}

// DailyReport is the dashboard view of one date.
type DailyReport struct {
	Date         time.Time
	Totals       Totals
	Salespersons []SalespersonTotals
	Entries      []EntryWithSalesperson
	Summary      *database.DailySummary // nil when no reconciliation was saved
}

// RangeReport is the historical view of a date range.
type RangeReport struct {
	Filter  RangeFilter
	Totals  Totals
	Entries []EntryWithSalesperson
}

type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

// DailyTotals sums every entry on date. No entries yields zero totals.
func (s *ReportService) DailyTotals(ctx context.Context, date time.Time) (Totals, error) {
	row, err := s.store.GetDailyTotals(ctx, pgDate(date))
	if err != nil {
		return Totals{}, fmt.Errorf("get daily totals: %w", err)
	}
	return newTotals(row.TotalCash, row.TotalPhonepe, row.TotalExpenses, row.EntryCount), nil
}

// SalespersonTotals groups the date's entries by salesperson, ordered by
// name then id. Salespersons without entries on date are omitted.
func (s *ReportService) SalespersonTotals(ctx context.Context, date time.Time) ([]SalespersonTotals, error) {
	rows, err := s.store.ListSalespersonTotalsByDate(ctx, pgDate(date))
	if err != nil {
		return nil, fmt.Errorf("list salesperson totals: %w", err)
	}
	out := make([]SalespersonTotals, len(rows))
	for i, r := range rows {
		out[i] = SalespersonTotals{
			SalespersonID:   r.SalespersonID,
			SalespersonName: r.SalespersonName,
			Totals:          newTotals(r.TotalCash, r.TotalPhonepe, r.TotalExpenses, r.EntryCount),
		}
	}
	return out, nil
}

func (s *ReportService) RangeTotals(ctx context.Context, f RangeFilter) (Totals, error) {
	if err := f.check(); err != nil {
		return Totals{}, err
	}
	row, err := s.store.GetRangeTotals(ctx, database.GetRangeTotalsParams{
		FromDate:      pgDate(f.From),
		ToDate:        pgDate(f.To),
		SalespersonID: f.salespersonParam(),
	})
	if err != nil {
		return Totals{}, fmt.Errorf("get range totals: %w", err)
	}
	return newTotals(row.TotalCash, row.TotalPhonepe, row.TotalExpenses, row.EntryCount), nil
}

func (s *ReportService) DailyReport(ctx context.Context, date time.Time) (*DailyReport, error) {
	totals, err := s.DailyTotals(ctx, date)
	if err != nil {
		return nil, err
	}
	perSalesperson, err := s.SalespersonTotals(ctx, date)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListSalesEntriesByDate(ctx, pgDate(date))
	if err != nil {
		return nil, fmt.Errorf("list sales entries by date: %w", err)
	}

	report := &DailyReport{
		Date:         date,
		Totals:       totals,
		Salespersons: perSalesperson,
		Entries:      entriesFromDateRows(rows),
	}

	summary, err := s.store.GetDailySummaryByDate(ctx, pgDate(date))
	switch {
	case err == nil:
		report.Summary = &summary
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return nil, fmt.Errorf("get daily summary: %w", err)
	}
	return report, nil
}

func (s *ReportService) RangeReport(ctx context.Context, f RangeFilter) (*RangeReport, error) {
	totals, err := s.RangeTotals(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListSalesEntriesInRange(ctx, database.ListSalesEntriesInRangeParams{
		FromDate:      pgDate(f.From),
		ToDate:        pgDate(f.To),
		SalespersonID: f.salespersonParam(),
	})
	if err != nil {
		return nil, fmt.Errorf("list sales entries in range: %w", err)
	}
	return &RangeReport{
		Filter:  f,
		Totals:  totals,
		Entries: entriesFromRangeRows(rows),
	}, nil
}
