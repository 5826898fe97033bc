package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
	"github.com/swapsdesk/tradebook/internal/core/services"
	"github.com/swapsdesk/tradebook/internal/core/validation"
	"github.com/swapsdesk/tradebook/internal/handlers"
	"github.com/swapsdesk/tradebook/internal/middleware"
	"github.com/swapsdesk/tradebook/internal/platform/config"
	"github.com/swapsdesk/tradebook/internal/repositories/database/pgsql"
	"github.com/swapsdesk/tradebook/pkg/database"
)

// @title Tradebook API
// @version 1.0
// @description Trade booking, validation and lifecycle management for swap trades.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, buildServices(dbPool))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires the repositories, validators and services.
func buildServices(dbPool *pgxpool.Pool) *portssvc.ServiceContainer {
	tradeRepo := pgsql.NewPgxTradeRepository(dbPool)
	bookRepo := pgsql.NewPgxBookRepository(dbPool)
	cptyRepo := pgsql.NewPgxCounterpartyRepository(dbPool)
	userRepo := pgsql.NewPgxUserRepository(dbPool)
	infoRepo := pgsql.NewPgxAdditionalInfoRepository(dbPool)

	legValidator := validation.NewTradeLegValidator()
	tradeValidator := validation.NewTradeValidator(bookRepo, cptyRepo, legValidator)
	privilegeValidator := validation.NewUserPrivilegeValidator(userRepo)
	cashflowGen := services.NewCashflowGenerator()

	return &portssvc.ServiceContainer{
		Trade:          services.NewTradeService(tradeRepo, bookRepo, cptyRepo, tradeValidator, privilegeValidator, cashflowGen),
		Reporting:      services.NewTradeReportingService(tradeRepo),
		AdditionalInfo: services.NewAdditionalInfoService(infoRepo, tradeRepo, privilegeValidator),
		User:           services.NewUserService(userRepo),
		RefData:        services.NewRefDataService(bookRepo, cptyRepo),
	}
}

// runMigrations applies all pending "up" migrations before the server
// accepts traffic.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", upErr.Error()))
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
