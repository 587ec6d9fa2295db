package services

import (
	"context"
	"time"

	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

// ReportSvc builds account statements.
type ReportSvc interface {
	// GetCustomerReport joins the customer's profile with a page of the
	// transactions of all its accounts dated within [start, end].
	GetCustomerReport(ctx context.Context, customerID string, start, end time.Time, page pagination.Request) (*domain.Report, error)
}
