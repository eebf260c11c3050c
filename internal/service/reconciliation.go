package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/money"
	"github.com/salesledger/api/internal/validate"
	"github.com/shopspring/decimal"
)

// DailySummaryStore defines the DB methods needed for reconciliation records.
type DailySummaryStore interface {
	UpsertDailySummary(ctx context.Context, arg database.UpsertDailySummaryParams) (database.DailySummary, error)
	GetDailySummaryByDate(ctx context.Context, summaryDate pgtype.Date) (database.DailySummary, error)
}

type ReconciliationService struct {
	store DailySummaryStore
}

func NewReconciliationService(store DailySummaryStore) *ReconciliationService {
	return &ReconciliationService{store: store}
}

// ClosingBalance is opening + collection - sales. It may be negative.
func ClosingBalance(opening, totalSales, totalCollection decimal.Decimal) decimal.Decimal {
	return opening.Add(totalCollection).Sub(totalSales)
}

// Save writes the reconciliation record for date, replacing any earlier one.
func (s *ReconciliationService) Save(ctx context.Context, date time.Time, in validate.DailySummary) (database.DailySummary, error) {
	closing := ClosingBalance(in.OpeningCash, in.TotalSales, in.TotalCollection)
	summary, err := s.store.UpsertDailySummary(ctx, database.UpsertDailySummaryParams{
		SummaryDate:     pgDate(date),
		OpeningCash:     money.ToNumeric(in.OpeningCash),
		TotalSales:      money.ToNumeric(in.TotalSales),
		TotalCollection: money.ToNumeric(in.TotalCollection),
		ClosingBalance:  money.ToNumeric(closing),
	})
	if err != nil {
		return database.DailySummary{}, fmt.Errorf("upsert daily summary: %w", err)
	}
	return summary, nil
}

// Get returns the record for date, or nil when none has been saved.
func (s *ReconciliationService) Get(ctx context.Context, date time.Time) (*database.DailySummary, error) {
	summary, err := s.store.GetDailySummaryByDate(ctx, pgDate(date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily summary: %w", err)
	}
	return &summary, nil
}
