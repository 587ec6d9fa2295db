package services

import (
	"context"

	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/dto"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	// GetCustomerByID returns the customer whatever its status.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	ListCustomers(ctx context.Context, page pagination.Request) (pagination.Page[domain.Customer], error)
}

// CustomerWriterSvc defines write operations for customers
type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// UpdateCustomer merges the provided fields into the customer.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeactivateCustomer soft-deletes a customer.
	DeactivateCustomer(ctx context.Context, customerID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
