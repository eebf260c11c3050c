package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salesledger/api/internal/config"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/handler"
	"github.com/salesledger/api/internal/logger"
	mw "github.com/salesledger/api/internal/middleware"
	"github.com/salesledger/api/internal/service"
	"github.com/salesledger/api/internal/validate"
	"github.com/salesledger/api/internal/ws"
)

// New creates a Chi router with all application routes wired up.
// /api requires a bearer token only when cfg.AuthRequired is set.
func New(cfg *config.Config, queries *database.Queries, pool *pgxpool.Pool, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger(logger.Get()))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := pool.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`)) //nolint:errcheck
			return
		}
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	authHandler := handler.NewAuthHandler(queries, cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// Live feed (checks ?token= itself when auth is required)
	r.Get("/ws/dates/{date}", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, cfg.AuthRequired, w, r)
	})

	val := validate.New(cfg.PaymentMethods)

	salespersonService := service.NewSalespersonService(queries, pool, func(db database.DBTX) service.SalespersonStore {
		return database.New(db)
	})
	entryService := service.NewEntryService(queries, pool, func(db database.DBTX) service.EntryStore {
		return database.New(db)
	})
	reportService := service.NewReportService(queries)
	reconService := service.NewReconciliationService(queries)

	r.Route("/api", func(r chi.Router) {
		if cfg.AuthRequired {
			r.Use(mw.Authenticate(cfg.JWTSecret))
		}

		handler.NewSalespersonHandler(salespersonService, val).RegisterRoutes(r)
		handler.NewEntryHandler(entryService, val, hub).RegisterRoutes(r)
		handler.NewReportHandler(reportService, reconService, val, hub).RegisterRoutes(r)
		handler.NewExportHandler(reportService, queries, cfg.CurrencySymbol).RegisterRoutes(r)
	})

	logger.Get().Info("router initialized")
	return r
}
