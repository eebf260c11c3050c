package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/salesledger/api/internal/database"
)

// Errors returned by the ledger services.
var (
	ErrSalespersonNotFound = errors.New("salesperson not found")
	ErrSalesEntryNotFound  = errors.New("sales entry not found")
	ErrSalespersonInUse    = errors.New("salespersons are referenced by sales entries")
	ErrInvalidDateRange    = errors.New("from_date must not be after to_date")
)

const pgForeignKeyViolation = "23503"

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RangeFilter selects entries with from <= date <= to, optionally for one salesperson.
type RangeFilter struct {
	From          time.Time
	To            time.Time
	SalespersonID *uuid.UUID
}

func (f RangeFilter) check() error {
	if f.From.After(f.To) {
		return ErrInvalidDateRange
	}
	return nil
}

func (f RangeFilter) salespersonParam() pgtype.UUID {
	if f.SalespersonID == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *f.SalespersonID, Valid: true}
}

// EntryWithSalesperson is a sales entry joined with its salesperson's name.
type EntryWithSalesperson struct {
	Entry           database.SalesEntry
	SalespersonName string
}

func pgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func pgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

func entriesFromDateRows(rows []database.ListSalesEntriesByDateRow) []EntryWithSalesperson {
	out := make([]EntryWithSalesperson, len(rows))
	for i, r := range rows {
		out[i] = EntryWithSalesperson{
			Entry: database.SalesEntry{
				ID:               r.ID,
				EntryDate:        r.EntryDate,
				SalespersonID:    r.SalespersonID,
				CashCollected:    r.CashCollected,
				PhonepeCollected: r.PhonepeCollected,
				Expenses:         r.Expenses,
				Notes:            r.Notes,
				CreatedAt:        r.CreatedAt,
			},
			SalespersonName: r.SalespersonName,
		}
	}
	return out
}

func entriesFromRangeRows(rows []database.ListSalesEntriesInRangeRow) []EntryWithSalesperson {
	out := make([]EntryWithSalesperson, len(rows))
	for i, r := range rows {
		out[i] = EntryWithSalesperson{
			Entry: database.SalesEntry{
				ID:               r.ID,
				EntryDate:        r.EntryDate,
				SalespersonID:    r.SalespersonID,
				CashCollected:    r.CashCollected,
				PhonepeCollected: r.PhonepeCollected,
				Expenses:         r.Expenses,
				Notes:            r.Notes,
				CreatedAt:        r.CreatedAt,
			},
			SalespersonName: r.SalespersonName,
		}
	}
	return out
}
