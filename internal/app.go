// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "casinobuddy/internal/api"
	"casinobuddy/internal/api/handler"
	"casinobuddy/internal/config"
	"casinobuddy/internal/repository"
	"casinobuddy/internal/repository/postgres"
	"casinobuddy/internal/service"
	"casinobuddy/internal/util"
	"casinobuddy/pkg/db"
)

// Application holds all the initialized components of the application. It is
// constructed once at startup and shared read-only across handlers.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	CasinoRepository      repository.CasinoRepository
	UserRepository        repository.UserRepository
	TransactionRepository repository.TransactionRepository

	// Services
	LedgerService service.LedgerService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// Logger comes first so every failure below, config loading included,
	// can be reported through it.
	util.InitLogger()
	app.Logger = util.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	database, err := db.NewPostgresDB(app.Config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	app.CasinoRepository = postgres.NewCasinoRepository(app.DB)
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	app.LedgerService = service.NewLedgerService(
		app.CasinoRepository,
		app.UserRepository,
		app.TransactionRepository,
		app.Logger,
	)
	app.Logger.Info("Services initialized.")

	ledgerHandler := handler.NewLedgerHandler(app.LedgerService, app.Logger)
	app.HTTPHandler = router.NewRouter(ledgerHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
