package gateways

import (
	"context"

	"github.com/SscSPs/banking_services/internal/core/domain"
)

// CustomerLookup is the outcome of asking the customer service about a customer.
// It is one of CustomerAvailable, CustomerNotRegistered or CustomerUnavailable.
type CustomerLookup interface {
	RequestedID() string
	lookup()
}

// CustomerAvailable carries the profile returned by the customer service.
// The customer may be active or inactive.
type CustomerAvailable struct {
	Customer domain.Customer
}

// CustomerNotRegistered means the customer service answered and has no such customer.
type CustomerNotRegistered struct {
	ID string
}

// CustomerUnavailable means the customer service could not be reached.
type CustomerUnavailable struct {
	ID  string
	Err error
}

func (c CustomerAvailable) RequestedID() string     { return c.Customer.CustomerID }
func (c CustomerNotRegistered) RequestedID() string { return c.ID }
func (c CustomerUnavailable) RequestedID() string   { return c.ID }

func (CustomerAvailable) lookup()     {}
func (CustomerNotRegistered) lookup() {}
func (CustomerUnavailable) lookup()   {}

// CustomerGateway looks customers up in the customer service. Lookups never
// return an error: transport failures are reported as CustomerUnavailable.
type CustomerGateway interface {
	LookupCustomer(ctx context.Context, customerID string) CustomerLookup
}
