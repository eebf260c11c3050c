package handler_test

import (
	"context"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/handler"
	"github.com/salesledger/api/internal/service"
	"github.com/salesledger/api/internal/validate"
)

// --- Mock SalespersonServicer ---

type mockSalespersonService struct {
	rows  []database.Salesperson
	inUse bool
}

func (m *mockSalespersonService) Create(_ context.Context, in validate.Salesperson) (database.Salesperson, error) {
	s := database.Salesperson{ID: uuid.New(), Name: in.Name, CreatedAt: time.Now()}
	if in.Email != "" {
		s.Email = pgtype.Text{String: in.Email, Valid: true}
	}
	m.rows = append(m.rows, s)
	return s, nil
}

func (m *mockSalespersonService) List(_ context.Context) ([]database.Salesperson, error) {
	out := append([]database.Salesperson{}, m.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockSalespersonService) SeedDefaults(ctx context.Context) ([]database.Salesperson, error) {
	if len(m.rows) > 0 {
		return []database.Salesperson{}, nil
	}
	var created []database.Salesperson
	for _, d := range service.DefaultSalespersons {
		s, _ := m.Create(ctx, d)
		created = append(created, s)
	}
	return created, nil
}

func (m *mockSalespersonService) Clear(_ context.Context) (int64, error) {
	if m.inUse {
		return 0, service.ErrSalespersonInUse
	}
	n := int64(len(m.rows))
	m.rows = nil
	return n, nil
}

// --- Helpers ---

func setupSalespersonRouter(svc *mockSalespersonService) *chi.Mux {
	h := handler.NewSalespersonHandler(svc, newTestValidator())
	r := chi.NewRouter()
	r.Route("/api", h.RegisterRoutes)
	return r
}

// --- Tests ---

func TestCreateSalesperson(t *testing.T) {
	r := setupSalespersonRouter(&mockSalespersonService{})

	rr := postJSON(t, r, "/api/salespersons", map[string]string{"name": "  Dev Patel ", "email": "dev@company.com"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decodeResponse(t, rr)
	if resp["name"] != "Dev Patel" {
		t.Errorf("name: got %q, want trimmed", resp["name"])
	}
	if resp["email"] != "dev@company.com" {
		t.Errorf("email: got %v", resp["email"])
	}
}

func TestCreateSalesperson_NoEmail(t *testing.T) {
	r := setupSalespersonRouter(&mockSalespersonService{})

	rr := postJSON(t, r, "/api/salespersons", map[string]string{"name": "Dev"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if resp := decodeResponse(t, rr); resp["email"] != nil {
		t.Errorf("email: got %v, want null", resp["email"])
	}
}

func TestCreateSalesperson_BlankName(t *testing.T) {
	r := setupSalespersonRouter(&mockSalespersonService{})

	rr := postJSON(t, r, "/api/salespersons", map[string]string{"name": "   "})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestListSalespersonsAlphabetical(t *testing.T) {
	svc := &mockSalespersonService{}
	r := setupSalespersonRouter(svc)
	postJSON(t, r, "/api/salespersons", map[string]string{"name": "Zoe"})
	postJSON(t, r, "/api/salespersons", map[string]string{"name": "Amit"})

	rr := doJSON(t, r, http.MethodGet, "/api/salespersons", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	list := decodeList(t, rr)
	if len(list) != 2 || list[0]["name"] != "Amit" {
		t.Errorf("unexpected order: %v", list)
	}
}

func TestListSalespersons_Empty(t *testing.T) {
	r := setupSalespersonRouter(&mockSalespersonService{})

	rr := doJSON(t, r, http.MethodGet, "/api/salespersons", nil)
	if got := rr.Body.String(); got != "[]\n" {
		t.Errorf("body: got %q, want empty array", got)
	}
}

func TestInitSeedsOnlyOnce(t *testing.T) {
	r := setupSalespersonRouter(&mockSalespersonService{})

	rr := postJSON(t, r, "/api/init", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	resp := decodeResponse(t, rr)
	if resp["created"] != true || len(resp["salespersons"].([]interface{})) != 3 {
		t.Errorf("first init: got %v", resp)
	}

	resp = decodeResponse(t, postJSON(t, r, "/api/init", nil))
	if resp["created"] != false || len(resp["salespersons"].([]interface{})) != 0 {
		t.Errorf("second init: got %v", resp)
	}
}

func TestClearSalespersons(t *testing.T) {
	svc := &mockSalespersonService{}
	r := setupSalespersonRouter(svc)
	postJSON(t, r, "/api/init", nil)

	svc.inUse = true
	rr := doJSON(t, r, http.MethodDelete, "/api/salespersons", nil)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rr.Code)
	}

	svc.inUse = false
	rr = doJSON(t, r, http.MethodDelete, "/api/salespersons", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if resp := decodeResponse(t, rr); resp["deleted"] != float64(3) {
		t.Errorf("deleted: got %v, want 3", resp["deleted"])
	}
}
