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
	"github.com/salesledger/api/internal/validate"
)

// EntryStore defines the DB methods needed for sales entries and their individual sales.
// Satisfied by *database.Queries (and its WithTx variant).
type EntryStore interface {
	CreateSalesEntry(ctx context.Context, arg database.CreateSalesEntryParams) (database.SalesEntry, error)
	GetSalesEntry(ctx context.Context, id uuid.UUID) (database.SalesEntry, error)
	ListSalesEntriesByDate(ctx context.Context, entryDate pgtype.Date) ([]database.ListSalesEntriesByDateRow, error)
	ListSalesEntriesInRange(ctx context.Context, arg database.ListSalesEntriesInRangeParams) ([]database.ListSalesEntriesInRangeRow, error)
	DeleteIndividualSalesByEntry(ctx context.Context, salesEntryID uuid.UUID) (int64, error)
	DeleteSalesEntry(ctx context.Context, id uuid.UUID) (database.SalesEntry, error)
	CreateIndividualSale(ctx context.Context, arg database.CreateIndividualSaleParams) (database.IndividualSale, error)
	ListIndividualSalesByEntry(ctx context.Context, salesEntryID uuid.UUID) ([]database.IndividualSale, error)
}

// NewEntryStore creates an EntryStore from a DBTX (pool or tx).
type NewEntryStore func(db database.DBTX) EntryStore

// CreateEntryResult is a created entry with the individual sales submitted alongside it.
type CreateEntryResult struct {
	Entry           database.SalesEntry
	IndividualSales []database.IndividualSale
}

type EntryService struct {
	store    EntryStore
	pool     TxBeginner
	newStore NewEntryStore
}

func NewEntryService(store EntryStore, pool TxBeginner, newStore NewEntryStore) *EntryService {
	return &EntryService{store: store, pool: pool, newStore: newStore}
}

// Create persists an entry and its individual sales in one transaction.
// Either the entry and all of its sales are stored or none are.
func (s *EntryService) Create(ctx context.Context, in validate.SalesEntry) (*CreateEntryResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	entry, err := store.CreateSalesEntry(ctx, database.CreateSalesEntryParams{
		EntryDate:        pgDate(in.Date),
		SalespersonID:    in.SalespersonID,
		CashCollected:    money.ToNumeric(in.CashCollected),
		PhonepeCollected: money.ToNumeric(in.PhonepeCollected),
		Expenses:         money.ToNumeric(in.Expenses),
		Notes:            pgText(in.Notes),
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrSalespersonNotFound
		}
		return nil, fmt.Errorf("create sales entry: %w", err)
	}

	sales := make([]database.IndividualSale, 0, len(in.IndividualSales))
	for i, sale := range in.IndividualSales {
		created, err := store.CreateIndividualSale(ctx, database.CreateIndividualSaleParams{
			SalesEntryID:  entry.ID,
			CustomerName:  sale.CustomerName,
			Amount:        money.ToNumeric(sale.Amount),
			PaymentMethod: sale.PaymentMethod,
		})
		if err != nil {
			return nil, fmt.Errorf("individual_sales[%d]: create individual sale: %w", i, err)
		}
		sales = append(sales, created)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &CreateEntryResult{Entry: entry, IndividualSales: sales}, nil
}

// Get returns one entry by id.
func (s *EntryService) Get(ctx context.Context, id uuid.UUID) (database.SalesEntry, error) {
	entry, err := s.store.GetSalesEntry(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.SalesEntry{}, ErrSalesEntryNotFound
		}
		return database.SalesEntry{}, fmt.Errorf("get sales entry: %w", err)
	}
	return entry, nil
}

// CreateIndividualSale adds a sale line to an existing entry.
func (s *EntryService) CreateIndividualSale(ctx context.Context, entryID uuid.UUID, in validate.IndividualSale) (database.IndividualSale, error) {
	sale, err := s.store.CreateIndividualSale(ctx, database.CreateIndividualSaleParams{
		SalesEntryID:  entryID,
		CustomerName:  in.CustomerName,
		Amount:        money.ToNumeric(in.Amount),
		PaymentMethod: in.PaymentMethod,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return database.IndividualSale{}, ErrSalesEntryNotFound
		}
		return database.IndividualSale{}, fmt.Errorf("create individual sale: %w", err)
	}
	return sale, nil
}

// ListIndividualSales returns an entry's sales, most recent first.
// An unknown entry yields an empty list.
func (s *EntryService) ListIndividualSales(ctx context.Context, entryID uuid.UUID) ([]database.IndividualSale, error) {
	sales, err := s.store.ListIndividualSalesByEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("list individual sales: %w", err)
	}
	if sales == nil {
		sales = []database.IndividualSale{}
	}
	return sales, nil
}

// Delete removes an entry and its individual sales in one transaction and
// returns the deleted entry.
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) (database.SalesEntry, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return database.SalesEntry{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	if _, err := store.DeleteIndividualSalesByEntry(ctx, id); err != nil {
		return database.SalesEntry{}, fmt.Errorf("delete individual sales: %w", err)
	}
	entry, err := store.DeleteSalesEntry(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.SalesEntry{}, ErrSalesEntryNotFound
		}
		return database.SalesEntry{}, fmt.Errorf("delete sales entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return database.SalesEntry{}, fmt.Errorf("commit tx: %w", err)
	}
	return entry, nil
}

// ListByDate returns the entries for one date, most recently created first.
func (s *EntryService) ListByDate(ctx context.Context, date time.Time) ([]EntryWithSalesperson, error) {
	rows, err := s.store.ListSalesEntriesByDate(ctx, pgDate(date))
	if err != nil {
		return nil, fmt.Errorf("list sales entries by date: %w", err)
	}
	return entriesFromDateRows(rows), nil
}

// ListInRange returns entries within the inclusive range, newest date first
// and most recently created first within a date.
func (s *EntryService) ListInRange(ctx context.Context, f RangeFilter) ([]EntryWithSalesperson, error) {
	if err := f.check(); err != nil {
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
	return entriesFromRangeRows(rows), nil
}
