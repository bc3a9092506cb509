package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/grouphome_ledger/internal/adapters/render/pdf"
	"github.com/SscSPs/grouphome_ledger/internal/adapters/render/xlsx"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
	"github.com/SscSPs/grouphome_ledger/internal/core/services"
	"github.com/SscSPs/grouphome_ledger/internal/handlers"
	"github.com/SscSPs/grouphome_ledger/internal/middleware"
	"github.com/SscSPs/grouphome_ledger/internal/platform/config"
	"github.com/SscSPs/grouphome_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/grouphome_ledger/internal/repositories/memory"
	"github.com/SscSPs/grouphome_ledger/pkg/database"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, closeRepos, err := setupRepositories(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	renderers := map[portssvc.StatementFormat]portssvc.StatementRenderer{
		portssvc.StatementPDF:  pdf.NewRenderer(cfg.ReportingLocation),
		portssvc.StatementXLSX: xlsx.NewRenderer(cfg.ReportingLocation),
	}
	serviceContainer := services.NewServiceContainer(repos, renderers, services.WithLocation(cfg.ReportingLocation))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver), slog.String("timezone", cfg.ReportingTimezone))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories connects the configured storage driver. The returned func releases it.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		store := memory.New()
		seedDemoDirectory(store)
		logger.Info("In-memory store ready with demo directory")
		return portsrepo.RepositoryProvider{LedgerRepo: store, DirectoryRepo: store}, func() {}, nil
	}

	logger.Info("Running database migrations...")
	applied, err := database.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns:    cfg.DBMaxConns,
		LockTimeout: cfg.DBLockTimeout,
		Ping:        cfg.EnableDBCheck,
	})
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

// seedDemoDirectory gives the in-memory driver one home with one resident and one staff
// member, since the directory tables are owned elsewhere.
func seedDemoDirectory(store *memory.Store) {
	homeID := int64(1)
	store.AddResident(domain.Resident{ID: 1, FirstName: "Demo", LastName: "Resident", GroupHomeID: &homeID})
	store.AddStaff(domain.Staff{ID: 1, FirstName: "Demo", LastName: "Staff"})
}
