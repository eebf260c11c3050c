package service

import (
	"context"
	"fmt"

	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/validate"
)

// DefaultSalespersons are created by SeedDefaults when the table is empty.
var DefaultSalespersons = []validate.Salesperson{
	{Name: "Alice Johnson", Email: "alice@company.com"},
	{Name: "Bob Smith", Email: "bob@company.com"},
	{Name: "Carol Davis", Email: "carol@company.com"},
}

// SalespersonStore defines the DB methods needed for salespersons.
// Satisfied by *database.Queries (and its WithTx variant).
type SalespersonStore interface {
	CreateSalesperson(ctx context.Context, arg database.CreateSalespersonParams) (database.Salesperson, error)
	ListSalespersons(ctx context.Context) ([]database.Salesperson, error)
	CountSalespersons(ctx context.Context) (int64, error)
	LockSalespersons(ctx context.Context) error
	DeleteAllSalespersons(ctx context.Context) (int64, error)
}

// NewSalespersonStore creates a SalespersonStore from a DBTX (pool or tx).
type NewSalespersonStore func(db database.DBTX) SalespersonStore

type SalespersonService struct {
	store    SalespersonStore
	pool     TxBeginner
	newStore NewSalespersonStore
}

func NewSalespersonService(store SalespersonStore, pool TxBeginner, newStore NewSalespersonStore) *SalespersonService {
	return &SalespersonService{store: store, pool: pool, newStore: newStore}
}

func (s *SalespersonService) Create(ctx context.Context, in validate.Salesperson) (database.Salesperson, error) {
	sp, err := s.store.CreateSalesperson(ctx, database.CreateSalespersonParams{
		Name:  in.Name,
		Email: pgText(in.Email),
	})
	if err != nil {
		return database.Salesperson{}, fmt.Errorf("create salesperson: %w", err)
	}
	return sp, nil
}

// List returns every salesperson ordered by name (ties broken by id).
func (s *SalespersonService) List(ctx context.Context) ([]database.Salesperson, error) {
	sps, err := s.store.ListSalespersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list salespersons: %w", err)
	}
	return sps, nil
}

// SeedDefaults inserts DefaultSalespersons if no salesperson exists yet and
// returns the rows it created (empty when the table was already populated).
func (s *SalespersonService) SeedDefaults(ctx context.Context) ([]database.Salesperson, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	// Serialize concurrent seeders so the count check stays valid until commit.
	if err := store.LockSalespersons(ctx); err != nil {
		return nil, fmt.Errorf("lock salespersons: %w", err)
	}
	n, err := store.CountSalespersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("count salespersons: %w", err)
	}
	created := []database.Salesperson{}
	if n > 0 {
		return created, nil
	}

	for _, d := range DefaultSalespersons {
		sp, err := store.CreateSalesperson(ctx, database.CreateSalespersonParams{
			Name:  d.Name,
			Email: pgText(d.Email),
		})
		if err != nil {
			return nil, fmt.Errorf("seed salesperson %q: %w", d.Name, err)
		}
		created = append(created, sp)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return created, nil
}

// Clear deletes every salesperson. It fails with ErrSalespersonInUse when any
// salesperson still has sales entries.
func (s *SalespersonService) Clear(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteAllSalespersons(ctx)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrSalespersonInUse
		}
		return 0, fmt.Errorf("delete salespersons: %w", err)
	}
	return n, nil
}
