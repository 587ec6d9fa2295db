package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its id.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of all transactions ordered by date.
	ListTransactions(ctx context.Context, page pagination.Request) (pagination.Page[domain.Transaction], error)

	// FindTransactionsByCustomerAndDate retrieves a page of transactions posted
	// between start and end (both inclusive) on accounts owned by customerID.
	FindTransactionsByCustomerAndDate(ctx context.Context, customerID string, start, end time.Time, page pagination.Request) (pagination.Page[domain.Transaction], error)
}

// TransactionWriter defines write operations that do not move balances.
type TransactionWriter interface {
	// UpdateTransaction overwrites a stored transaction.
	UpdateTransaction(ctx context.Context, transaction domain.Transaction) error

	// DeleteTransaction removes a transaction record.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
