package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	"github.com/SscSPs/banking_services/internal/models"
	"github.com/SscSPs/banking_services/internal/utils/mapping"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, customer_id, account_number, account_type, balance, status, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row rowScanner) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.CustomerID,
		&m.AccountNumber,
		&m.AccountType,
		&m.Balance,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

// findAccount runs a single-account query and maps a missing row to apperrors.ErrNotFound.
func findAccount(ctx context.Context, q querier, query string, args ...any) (*domain.Account, error) {
	acc, err := scanAccount(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, "failed to find account")
	}
	return &acc, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.CustomerID,
		m.AccountNumber,
		m.AccountType,
		m.Balance,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to save account %s", m.AccountID))
	}
	return nil
}

// UpdateAccount updates the details and status of an account. The balance is left untouched.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET customer_id = $2, account_number = $3, account_type = $4, status = $5, last_updated_at = $6
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.CustomerID,
		m.AccountNumber,
		m.AccountType,
		m.Status,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update account %s", m.AccountID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	return findAccount(ctx, r.Pool, query, accountID)
}

// FindAccountByNumber retrieves the account holding accountNumber, skipping excludeNumber.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string, excludeNumber string) (*domain.Account, error) {
	return findAccountByNumber(ctx, r.Pool, accountNumber, excludeNumber)
}

// findAccountByNumber treats an empty excludeNumber as "exclude nothing".
func findAccountByNumber(ctx context.Context, q querier, accountNumber string, excludeNumber string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_number = $1
		  AND ($2::text = '' OR account_number <> $2::text)
		LIMIT 1;
	`
	return findAccount(ctx, q, query, accountNumber, excludeNumber)
}

// ListActiveAccounts retrieves a page of active accounts ordered by creation time.
func (r *PgxAccountRepository) ListActiveAccounts(ctx context.Context, page pagination.Request) (pagination.Page[domain.Account], error) {
	total, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM accounts WHERE status = TRUE;`)
	if err != nil {
		return pagination.Page[domain.Account]{}, translateError(err, "failed to count accounts")
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE status = TRUE
		ORDER BY created_at, account_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[domain.Account]{}, translateError(err, "failed to list accounts")
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0, page.Limit())
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return pagination.Page[domain.Account]{}, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[domain.Account]{}, fmt.Errorf("error iterating account rows: %w", err)
	}

	return pagination.NewPage(accounts, page, total), nil
}
