package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxUnitOfWorkFactory starts serializable units of work on a connection pool.
type PgxUnitOfWorkFactory struct {
	BaseRepository
}

func newPgxUnitOfWorkFactory(pool *pgxpool.Pool) portsrepo.UnitOfWorkFactory {
	return &PgxUnitOfWorkFactory{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitOfWorkFactory = (*PgxUnitOfWorkFactory)(nil)

// Begin opens a SERIALIZABLE transaction. The caller must end it with Commit or Rollback.
func (f *PgxUnitOfWorkFactory) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	tx, err := f.BeginSerializable(ctx)
	if err != nil {
		return nil, err
	}
	return &pgxUnitOfWork{
		base:         &f.BaseRepository,
		tx:           tx,
		accounts:     &txAccountStore{tx: tx},
		transactions: &txTransactionStore{tx: tx},
	}, nil
}

type pgxUnitOfWork struct {
	base         *BaseRepository
	tx           pgx.Tx
	accounts     *txAccountStore
	transactions *txTransactionStore
}

func (u *pgxUnitOfWork) Accounts() portsrepo.AccountLocker           { return u.accounts }
func (u *pgxUnitOfWork) Transactions() portsrepo.TransactionRecorder { return u.transactions }

func (u *pgxUnitOfWork) Commit(ctx context.Context) error {
	return u.base.Commit(ctx, u.tx)
}

func (u *pgxUnitOfWork) Rollback(ctx context.Context) error {
	return u.base.Rollback(ctx, u.tx)
}

// txAccountStore runs account statements on the unit of work's transaction.
type txAccountStore struct {
	tx querier
}

// FindAccountByIDForUpdate locks the account row for the rest of the transaction.
func (s *txAccountStore) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`
	return findAccount(ctx, s.tx, query, accountID)
}

// UpdateAccountBalance overwrites the balance of a locked account.
func (s *txAccountStore) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error {
	query := `UPDATE accounts SET balance = $2, last_updated_at = $3 WHERE account_id = $1;`
	cmdTag, err := s.tx.Exec(ctx, query, accountID, balance, now)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update balance of account %s", accountID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// txTransactionStore records postings on the unit of work's transaction.
type txTransactionStore struct {
	tx pgx.Tx
}

func (s *txTransactionStore) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	return insertTransaction(ctx, s.tx, transaction)
}
