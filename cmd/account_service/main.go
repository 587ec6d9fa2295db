package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/banking_services/internal/adapters/gateway"
	"github.com/SscSPs/banking_services/internal/core/services"
	"github.com/SscSPs/banking_services/internal/handlers"
	"github.com/SscSPs/banking_services/internal/platform/config"
	"github.com/SscSPs/banking_services/internal/platform/metrics"
	"github.com/SscSPs/banking_services/internal/platform/resilience"
	"github.com/SscSPs/banking_services/internal/platform/server"
	"github.com/SscSPs/banking_services/internal/platform/tracing"
	"github.com/SscSPs/banking_services/internal/repositories/database/pgsql"
	"github.com/SscSPs/banking_services/internal/utils/validation"
	"github.com/SscSPs/banking_services/pkg/database"
)

// @title Account Service API
// @version 1.0
// @description Accounts, transaction postings and customer account statements.

// @host localhost:8080
// @BasePath /v1
func main() {
	cfg, err := config.LoadConfig(config.AccountService)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := server.NewLogger(cfg.LogLevel, os.Stdout).With(slog.String("service", cfg.ServiceName))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Account service stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	shutdownTracer, err := tracing.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("Failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	validation.RegisterWithGin()
	m := metrics.NewMetrics(cfg.ServiceName)

	customers := gateway.NewCustomerClient(
		&http.Client{Timeout: cfg.CustomerClientTimeout},
		cfg.CustomerServiceURL,
		resilience.Config{
			MaxRetries:     cfg.CustomerClientMaxRetries,
			InitialBackoff: cfg.CustomerClientBackoff,
		},
		gateway.WithMetrics(m),
	)
	logger.Info("Customer gateway configured", slog.String("base_url", cfg.CustomerServiceURL))

	svc := services.NewAccountServiceContainer(cfg, pgsql.NewAccountRepositoryProvider(dbPool), customers, m)

	r, err := handlers.NewEngine(cfg, logger)
	if err != nil {
		return err
	}
	if err := handlers.RegisterAccountRoutes(r, cfg, m, svc); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return server.Run(ctx, srv, cfg.ShutdownTimeout, logger)
}
