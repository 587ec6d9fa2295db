package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/banking_services/internal/core/services"
	"github.com/SscSPs/banking_services/internal/handlers"
	"github.com/SscSPs/banking_services/internal/platform/config"
	"github.com/SscSPs/banking_services/internal/platform/metrics"
	"github.com/SscSPs/banking_services/internal/platform/server"
	"github.com/SscSPs/banking_services/internal/platform/tracing"
	"github.com/SscSPs/banking_services/internal/repositories/database/pgsql"
	"github.com/SscSPs/banking_services/internal/utils/validation"
	"github.com/SscSPs/banking_services/pkg/database"
)

// @title Customer Service API
// @version 1.0
// @description Customers and the persons behind them.

// @host localhost:8081
// @BasePath /v1
func main() {
	cfg, err := config.LoadConfig(config.CustomerService)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := server.NewLogger(cfg.LogLevel, os.Stdout).With(slog.String("service", cfg.ServiceName))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Customer service stopped", slog.String("error", err.Error()))
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

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	validation.RegisterWithGin()
	m := metrics.NewMetrics(cfg.ServiceName)
	svc := services.NewCustomerServiceContainer(pgsql.NewCustomerRepositoryProvider(dbPool))

	r, err := handlers.NewEngine(cfg, logger)
	if err != nil {
		return err
	}
	if err := handlers.RegisterCustomerRoutes(r, cfg, m, svc); err != nil {
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
