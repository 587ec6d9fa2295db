package repositories

import (
	"context"

	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account by id regardless of its status.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves the account holding accountNumber. When
	// excludeNumber is not empty, an account whose number equals excludeNumber
	// is never returned, which lets an update keep its own number.
	FindAccountByNumber(ctx context.Context, accountNumber string, excludeNumber string) (*domain.Account, error)

	// ListActiveAccounts retrieves a page of active accounts.
	ListActiveAccounts(ctx context.Context, page pagination.Request) (pagination.Page[domain.Account], error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details and status. The
	// balance column is owned by postings and is not written here.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
