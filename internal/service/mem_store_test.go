package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/money"
	"github.com/shopspring/decimal"
)

// --- Mock implementations ---

// mockTx implements pgx.Tx with only the methods we need.
// The unused methods panic so we catch accidental calls.
type mockTx struct {
	commitErr error
	committed bool
}

func (m *mockTx) Begin(ctx context.Context) (pgx.Tx, error) { panic("not implemented") }
func (m *mockTx) Commit(ctx context.Context) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.committed = true
	return nil
}
func (m *mockTx) Rollback(ctx context.Context) error { return nil }
func (m *mockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	panic("not implemented")
}
func (m *mockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("not implemented")
}
func (m *mockTx) LargeObjects() pgx.LargeObjects { panic("not implemented") }
func (m *mockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	panic("not implemented")
}
func (m *mockTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	panic("not implemented")
}
func (m *mockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("not implemented")
}
func (m *mockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("not implemented")
}
func (m *mockTx) Conn() *pgx.Conn { panic("not implemented") }

// mockTxBeginner implements TxBeginner.
type mockTxBeginner struct {
	tx  *mockTx
	err error
}

func (m *mockTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tx, nil
}

// memStore is an in-memory stand-in for *database.Queries. It mirrors the
// ordering and constraint behavior of the SQL queries.
type memStore struct {
	salespersons map[uuid.UUID]database.Salesperson
	entries      map[uuid.UUID]database.SalesEntry
	sales        map[uuid.UUID]database.IndividualSale
	summaries    map[time.Time]database.DailySummary

	clock time.Time

	// failCreateSale makes CreateIndividualSale fail after this many successes (0 disables).
	failCreateSale int
	createdSales   int
}

func newMemStore() *memStore {
	return &memStore{
		salespersons: make(map[uuid.UUID]database.Salesperson),
		entries:      make(map[uuid.UUID]database.SalesEntry),
		sales:        make(map[uuid.UUID]database.IndividualSale),
		summaries:    make(map[time.Time]database.DailySummary),
		clock:        time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) now() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func fkViolation() error {
	return &pgconn.PgError{Code: "23503"}
}

// --- salespersons ---

func (m *memStore) CreateSalesperson(_ context.Context, arg database.CreateSalespersonParams) (database.Salesperson, error) {
	sp := database.Salesperson{ID: uuid.New(), Name: arg.Name, Email: arg.Email, CreatedAt: m.now()}
	m.salespersons[sp.ID] = sp
	return sp, nil
}

func (m *memStore) ListSalespersons(_ context.Context) ([]database.Salesperson, error) {
	out := []database.Salesperson{}
	for _, sp := range m.salespersons {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (m *memStore) CountSalespersons(_ context.Context) (int64, error) {
	return int64(len(m.salespersons)), nil
}

func (m *memStore) LockSalespersons(_ context.Context) error { return nil }

func (m *memStore) DeleteAllSalespersons(_ context.Context) (int64, error) {
	if len(m.entries) > 0 {
		return 0, fkViolation()
	}
	n := int64(len(m.salespersons))
	m.salespersons = make(map[uuid.UUID]database.Salesperson)
	return n, nil
}

// --- entries ---

func (m *memStore) addSalesperson(name string) uuid.UUID {
	sp, _ := m.CreateSalesperson(context.Background(), database.CreateSalespersonParams{Name: name})
	return sp.ID
}

func (m *memStore) CreateSalesEntry(_ context.Context, arg database.CreateSalesEntryParams) (database.SalesEntry, error) {
	if _, ok := m.salespersons[arg.SalespersonID]; !ok {
		return database.SalesEntry{}, fkViolation()
	}
	e := database.SalesEntry{
		ID:               uuid.New(),
		EntryDate:        arg.EntryDate,
		SalespersonID:    arg.SalespersonID,
		CashCollected:    arg.CashCollected,
		PhonepeCollected: arg.PhonepeCollected,
		Expenses:         arg.Expenses,
		Notes:            arg.Notes,
		CreatedAt:        m.now(),
	}
	m.entries[e.ID] = e
	return e, nil
}

// sortedEntries returns entries newest date first, then newest created first.
func (m *memStore) sortedEntries(keep func(database.SalesEntry) bool) []database.SalesEntry {
	var out []database.SalesEntry
	for _, e := range m.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EntryDate.Time.Equal(out[j].EntryDate.Time) {
			return out[i].EntryDate.Time.After(out[j].EntryDate.Time)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *memStore) ListSalesEntriesByDate(_ context.Context, entryDate pgtype.Date) ([]database.ListSalesEntriesByDateRow, error) {
	rows := []database.ListSalesEntriesByDateRow{}
	for _, e := range m.sortedEntries(func(e database.SalesEntry) bool { return e.EntryDate.Time.Equal(entryDate.Time) }) {
		rows = append(rows, database.ListSalesEntriesByDateRow{
			ID: e.ID, EntryDate: e.EntryDate, SalespersonID: e.SalespersonID,
			CashCollected: e.CashCollected, PhonepeCollected: e.PhonepeCollected, Expenses: e.Expenses,
			Notes: e.Notes, CreatedAt: e.CreatedAt, SalespersonName: m.salespersons[e.SalespersonID].Name,
		})
	}
	return rows, nil
}

func (m *memStore) inRange(from, to pgtype.Date, sp pgtype.UUID) func(database.SalesEntry) bool {
	return func(e database.SalesEntry) bool {
		d := e.EntryDate.Time
		if d.Before(from.Time) || d.After(to.Time) {
			return false
		}
		return !sp.Valid || uuid.UUID(sp.Bytes) == e.SalespersonID
	}
}

func (m *memStore) ListSalesEntriesInRange(_ context.Context, arg database.ListSalesEntriesInRangeParams) ([]database.ListSalesEntriesInRangeRow, error) {
	rows := []database.ListSalesEntriesInRangeRow{}
	for _, e := range m.sortedEntries(m.inRange(arg.FromDate, arg.ToDate, arg.SalespersonID)) {
		rows = append(rows, database.ListSalesEntriesInRangeRow{
			ID: e.ID, EntryDate: e.EntryDate, SalespersonID: e.SalespersonID,
			CashCollected: e.CashCollected, PhonepeCollected: e.PhonepeCollected, Expenses: e.Expenses,
			Notes: e.Notes, CreatedAt: e.CreatedAt, SalespersonName: m.salespersons[e.SalespersonID].Name,
		})
	}
	return rows, nil
}

func (m *memStore) DeleteIndividualSalesByEntry(_ context.Context, salesEntryID uuid.UUID) (int64, error) {
	var n int64
	for id, s := range m.sales {
		if s.SalesEntryID == salesEntryID {
			delete(m.sales, id)
			n++
		}
	}
	return n, nil
}

func (m *memStore) GetSalesEntry(_ context.Context, id uuid.UUID) (database.SalesEntry, error) {
	e, ok := m.entries[id]
	if !ok {
		return database.SalesEntry{}, pgx.ErrNoRows
	}
	return e, nil
}

func (m *memStore) DeleteSalesEntry(_ context.Context, id uuid.UUID) (database.SalesEntry, error) {
	e, ok := m.entries[id]
	if !ok {
		return database.SalesEntry{}, pgx.ErrNoRows
	}
	for _, s := range m.sales {
		if s.SalesEntryID == id {
			return database.SalesEntry{}, fkViolation()
		}
	}
	delete(m.entries, id)
	return e, nil
}

// --- individual sales ---

func (m *memStore) CreateIndividualSale(_ context.Context, arg database.CreateIndividualSaleParams) (database.IndividualSale, error) {
	if _, ok := m.entries[arg.SalesEntryID]; !ok {
		return database.IndividualSale{}, fkViolation()
	}
	if m.failCreateSale > 0 && m.createdSales >= m.failCreateSale {
		return database.IndividualSale{}, &pgconn.PgError{Code: "23514", Message: "check constraint"}
	}
	m.createdSales++
	s := database.IndividualSale{
		ID:            uuid.New(),
		SalesEntryID:  arg.SalesEntryID,
		CustomerName:  arg.CustomerName,
		Amount:        arg.Amount,
		PaymentMethod: arg.PaymentMethod,
		CreatedAt:     m.now(),
	}
	m.sales[s.ID] = s
	return s, nil
}

func (m *memStore) ListIndividualSalesByEntry(_ context.Context, salesEntryID uuid.UUID) ([]database.IndividualSale, error) {
	out := []database.IndividualSale{}
	for _, s := range m.sales {
		if s.SalesEntryID == salesEntryID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// --- totals ---

func sumEntries(entries []database.SalesEntry) (pgtype.Numeric, pgtype.Numeric, pgtype.Numeric) {
	cash, phonepe, expenses := decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range entries {
		cash = cash.Add(money.FromNumeric(e.CashCollected))
		phonepe = phonepe.Add(money.FromNumeric(e.PhonepeCollected))
		expenses = expenses.Add(money.FromNumeric(e.Expenses))
	}
	return money.ToNumeric(cash), money.ToNumeric(phonepe), money.ToNumeric(expenses)
}

func (m *memStore) GetDailyTotals(_ context.Context, entryDate pgtype.Date) (database.GetDailyTotalsRow, error) {
	entries := m.sortedEntries(func(e database.SalesEntry) bool { return e.EntryDate.Time.Equal(entryDate.Time) })
	c, p, x := sumEntries(entries)
	return database.GetDailyTotalsRow{TotalCash: c, TotalPhonepe: p, TotalExpenses: x, EntryCount: int64(len(entries))}, nil
}

func (m *memStore) GetRangeTotals(_ context.Context, arg database.GetRangeTotalsParams) (database.GetRangeTotalsRow, error) {
	entries := m.sortedEntries(m.inRange(arg.FromDate, arg.ToDate, arg.SalespersonID))
	c, p, x := sumEntries(entries)
	return database.GetRangeTotalsRow{TotalCash: c, TotalPhonepe: p, TotalExpenses: x, EntryCount: int64(len(entries))}, nil
}

func (m *memStore) ListSalespersonTotalsByDate(_ context.Context, entryDate pgtype.Date) ([]database.ListSalespersonTotalsByDateRow, error) {
	grouped := make(map[uuid.UUID][]database.SalesEntry)
	for _, e := range m.sortedEntries(func(e database.SalesEntry) bool { return e.EntryDate.Time.Equal(entryDate.Time) }) {
		grouped[e.SalespersonID] = append(grouped[e.SalespersonID], e)
	}
	rows := []database.ListSalespersonTotalsByDateRow{}
	for spID, entries := range grouped {
		c, p, x := sumEntries(entries)
		rows = append(rows, database.ListSalespersonTotalsByDateRow{
			SalespersonID:   spID,
			SalespersonName: m.salespersons[spID].Name,
			TotalCash:       c,
			TotalPhonepe:    p,
			TotalExpenses:   x,
			EntryCount:      int64(len(entries)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SalespersonName != rows[j].SalespersonName {
			return rows[i].SalespersonName < rows[j].SalespersonName
		}
		return rows[i].SalespersonID.String() < rows[j].SalespersonID.String()
	})
	return rows, nil
}

// --- daily summaries ---

func (m *memStore) UpsertDailySummary(_ context.Context, arg database.UpsertDailySummaryParams) (database.DailySummary, error) {
	now := m.now()
	ds, ok := m.summaries[arg.SummaryDate.Time]
	if !ok {
		ds = database.DailySummary{ID: uuid.New(), SummaryDate: arg.SummaryDate, CreatedAt: now}
	}
	ds.OpeningCash = arg.OpeningCash
	ds.TotalSales = arg.TotalSales
	ds.TotalCollection = arg.TotalCollection
	ds.ClosingBalance = arg.ClosingBalance
	ds.UpdatedAt = now
	m.summaries[arg.SummaryDate.Time] = ds
	return ds, nil
}

func (m *memStore) GetDailySummaryByDate(_ context.Context, summaryDate pgtype.Date) (database.DailySummary, error) {
	ds, ok := m.summaries[summaryDate.Time]
	if !ok {
		return database.DailySummary{}, pgx.ErrNoRows
	}
	return ds, nil
}
