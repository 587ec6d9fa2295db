package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountLocker exposes the account operations a posting needs inside a unit of work.
type AccountLocker interface {
	// FindAccountByIDForUpdate reads the account and locks its row until the
	// unit of work ends.
	FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error)

	// UpdateAccountBalance overwrites the balance of a locked account.
	UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error
}

// TransactionRecorder persists postings inside a unit of work.
type TransactionRecorder interface {
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error
}

// UnitOfWork is one atomic, serializable scope. Either every write made through
// it is committed or none is.
type UnitOfWork interface {
	Accounts() AccountLocker
	Transactions() TransactionRecorder

	// Commit makes every write durable.
	Commit(ctx context.Context) error

	// Rollback discards every write. It is safe to call after Commit.
	Rollback(ctx context.Context) error
}

// UnitOfWorkFactory starts units of work.
type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
