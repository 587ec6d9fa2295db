package services

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

// reportService implements the ReportSvc interface
type reportService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	customers       gateways.CustomerGateway
}

// NewReportService creates a report service backed by the transaction store and the customer gateway.
func NewReportService(repo portsrepo.TransactionReader, customers gateways.CustomerGateway) portssvc.ReportSvc {
	return &reportService{
		transactionRepo: repo,
		customers:       customers,
	}
}

var _ portssvc.ReportSvc = (*reportService)(nil)

// GetCustomerReport fetches the customer and the transactions concurrently.
// A missing or unreachable customer degrades to a placeholder; only a
// store failure fails the report.
func (s *reportService) GetCustomerReport(ctx context.Context, customerID string, start, end time.Time, page pagination.Request) (*domain.Report, error) {
	if end.Before(start) {
		return nil, apperrors.FieldErrors{{Field: "endDate", Message: "Should not be before startDate"}}
	}

	var (
		customer     domain.Customer
		transactions pagination.Page[domain.Transaction]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		customer = s.resolveCustomer(gctx, customerID)
		return nil
	})
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.FindTransactionsByCustomerAndDate(gctx, customerID, start, end, page)
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load report transactions",
			slog.String("customer_id", customerID))
		return nil, err
	}

	return &domain.Report{Customer: customer, Transactions: transactions}, nil
}

func (s *reportService) resolveCustomer(ctx context.Context, customerID string) domain.Customer {
	switch result := s.customers.LookupCustomer(ctx, customerID).(type) {
	case gateways.CustomerAvailable:
		return result.Customer
	case gateways.CustomerUnavailable:
		s.LogInfo(ctx, "Customer unavailable for report, using placeholder",
			slog.String("customer_id", customerID))
	default:
		s.LogDebug(ctx, "Customer not registered, using placeholder",
			slog.String("customer_id", customerID))
	}
	return domain.PlaceholderCustomer(customerID)
}
