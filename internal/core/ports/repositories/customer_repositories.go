package repositories

import (
	"context"

	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer regardless of its status.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a page of customers.
	ListCustomers(ctx context.Context, page pagination.Request) (pagination.Page[domain.Customer], error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer together with its person record.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates a customer and its person record.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

// PersonReader defines read operations for person data
type PersonReader interface {
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// FindPersonByIdentification retrieves the person holding identification,
	// never returning one whose identification equals excludeIdentification.
	FindPersonByIdentification(ctx context.Context, identification string, excludeIdentification string) (*domain.Person, error)

	ListPersons(ctx context.Context, page pagination.Request) (pagination.Page[domain.Person], error)
}

// PersonWriter defines write operations for person data
type PersonWriter interface {
	SavePerson(ctx context.Context, person domain.Person) error
	UpdatePerson(ctx context.Context, person domain.Person) error
	DeletePerson(ctx context.Context, personID string) error
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}
