package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.opentelemetry.io/otel"

	"github.com/SscSPs/banking_services/cmd/docs"
	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/middleware"
	"github.com/SscSPs/banking_services/internal/platform/config"
	"github.com/SscSPs/banking_services/internal/platform/metrics"
)

// RegisterAccountRoutes sets up all routes of the account service.
func RegisterAccountRoutes(
	r *gin.Engine,
	cfg *config.Config,
	m *metrics.Metrics,
	services *portssvc.AccountServiceContainer,
) error {
	v1, err := setupCommonRoutes(r, cfg, m, docs.SwaggerInfoaccount)
	if err != nil {
		return err
	}

	registerAccountRoutes(v1, services.Account)
	registerTransactionRoutes(v1, services.Transaction)
	registerReportRoutes(v1, services.Report)
	return nil
}

// RegisterCustomerRoutes sets up all routes of the customer service.
func RegisterCustomerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	m *metrics.Metrics,
	services *portssvc.CustomerServiceContainer,
) error {
	v1, err := setupCommonRoutes(r, cfg, m, docs.SwaggerInfocustomer)
	if err != nil {
		return err
	}

	registerCustomerRoutes(v1, services.Customer)
	registerPersonRoutes(v1, services.Person)
	return nil
}

// setupCommonRoutes installs the middleware and operational routes shared by
// both services and returns the rate-limited /v1 group.
func setupCommonRoutes(r *gin.Engine, cfg *config.Config, m *metrics.Metrics, spec *swag.Spec) (*gin.RouterGroup, error) {
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins), middleware.Metrics(m))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})))

	setupSwaggerRoutes(r, cfg, spec)

	rateLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", cfg.RateLimit, err)
	}
	return r.Group("/v1", middleware.RateLimit(rateLimiter)), nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config, spec *swag.Spec) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	spec.BasePath = "/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(spec.InstanceName())))
}

// NewEngine builds the gin engine with the global middleware both services use.
func NewEngine(cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (tracing, logging, recovery)
	r.Use(middleware.Tracing(otel.GetTracerProvider()), middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}
	return r, nil
}
