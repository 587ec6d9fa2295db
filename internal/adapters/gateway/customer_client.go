package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"

	"github.com/SscSPs/banking_services/internal/core/ports/gateways"
	"github.com/SscSPs/banking_services/internal/dto"
	"github.com/SscSPs/banking_services/internal/middleware"
	"github.com/SscSPs/banking_services/internal/platform/metrics"
	"github.com/SscSPs/banking_services/internal/platform/resilience"
)

var tracer = otel.Tracer("client")

// errCustomerNotFound is returned by a single attempt when the customer service answers 404.
// It is neither retried nor counted as a breaker failure.
var errCustomerNotFound = errors.New("customer not found")

// statusError is a non-2xx answer other than 404.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("customer API returned status %d", e.code)
}

// CustomerClient fetches customer profiles from the customer service over HTTP.
type CustomerClient struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
	metrics    *metrics.Metrics
}

// ClientOption configures a CustomerClient.
type ClientOption func(*CustomerClient)

// WithMetrics counts lookup outcomes.
func WithMetrics(m *metrics.Metrics) ClientOption {
	return func(c *CustomerClient) {
		c.metrics = m
	}
}

// WithCircuitBreaker replaces the default breaker.
func WithCircuitBreaker(cb *gobreaker.CircuitBreaker) ClientOption {
	return func(c *CustomerClient) {
		c.cb = cb
	}
}

// NewCustomerClient creates a new CustomerClient. The per-attempt timeout is the httpClient's.
func NewCustomerClient(httpClient *http.Client, baseURL string, cfg resilience.Config, opts ...ClientOption) *CustomerClient {
	c := &CustomerClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cb == nil {
		c.cb = resilience.NewCircuitBreaker("customer-service", isBreakerSuccess)
	}
	return c
}

var _ gateways.CustomerGateway = (*CustomerClient)(nil)

// LookupCustomer fetches a customer with retry, circuit breaker, and tracing.
func (c *CustomerClient) LookupCustomer(ctx context.Context, customerID string) gateways.CustomerLookup {
	ctx, span := tracer.Start(ctx, "CustomerClient.LookupCustomer")
	defer span.End()
	span.SetAttributes(attribute.String("customer.id", customerID))

	result, err := c.cb.Execute(func() (any, error) {
		var customer dto.CustomerResponse
		innerErr := resilience.RetryIf(ctx, c.cfg, isRetryable, func() error {
			return c.fetch(ctx, customerID, &customer)
		})
		if innerErr != nil {
			return nil, innerErr
		}
		return &customer, nil
	})

	switch {
	case err == nil:
		c.count(metrics.LookupFound)
		return gateways.CustomerAvailable{Customer: dto.ToDomainCustomer(*result.(*dto.CustomerResponse))}
	case errors.Is(err, errCustomerNotFound):
		c.count(metrics.LookupNotRegistered)
		span.SetAttributes(attribute.Bool("customer.registered", false))
		return gateways.CustomerNotRegistered{ID: customerID}
	default:
		c.count(metrics.LookupUnavailable)
		span.RecordError(err)
		span.SetStatus(codes.Error, "customer service unavailable")
		middleware.GetLoggerFromCtx(ctx).Warn("Customer service unavailable",
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()))
		return gateways.CustomerUnavailable{ID: customerID, Err: err}
	}
}

func (c *CustomerClient) fetch(ctx context.Context, customerID string, out *dto.CustomerResponse) error {
	endpoint := fmt.Sprintf("%s/v1/customers/%s", c.baseURL, url.PathEscape(customerID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if id := middleware.RequestIDFromCtx(ctx); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errCustomerNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode customer response: %w", err)
	}
	if out.CustomerID == "" {
		out.CustomerID = customerID
	}
	return nil
}

func (c *CustomerClient) count(outcome string) {
	if c.metrics != nil {
		c.metrics.IncrCustomerLookup(outcome)
	}
}

// isRetryable retries transport errors and 5xx answers.
func isRetryable(err error) bool {
	if errors.Is(err, errCustomerNotFound) || errors.Is(err, context.Canceled) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError
	}
	return true
}

func isBreakerSuccess(err error) bool {
	return err == nil || errors.Is(err, errCustomerNotFound)
}
