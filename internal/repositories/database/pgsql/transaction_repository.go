package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	"github.com/SscSPs/banking_services/internal/models"
	"github.com/SscSPs/banking_services/internal/utils/mapping"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, account_id, date, transaction_type, amount, balance, description`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Date,
		&m.TransactionType,
		&m.Amount,
		&m.Balance,
		&m.Description,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m), nil
}

// insertTransaction writes a posting through q, which is the unit of work's transaction.
func insertTransaction(ctx context.Context, q querier, transaction domain.Transaction) error {
	m := mapping.ToModelTransaction(transaction)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := q.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.Date,
		m.TransactionType,
		m.Amount,
		m.Balance,
		m.Description,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to save transaction %s", m.TransactionID))
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, fmt.Sprintf("failed to find transaction %s", transactionID))
	}
	return &txn, nil
}

// ListTransactions retrieves a page of all transactions ordered by date.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, page pagination.Request) (pagination.Page[domain.Transaction], error) {
	total, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM transactions;`)
	if err != nil {
		return pagination.Page[domain.Transaction]{}, translateError(err, "failed to count transactions")
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY date, transaction_id
		LIMIT $1 OFFSET $2;
	`
	return queryTransactionPage(ctx, r.Pool, page, total, query, page.Limit(), page.Offset())
}

// FindTransactionsByCustomerAndDate retrieves the customer's postings between start and end inclusive.
func (r *PgxTransactionRepository) FindTransactionsByCustomerAndDate(ctx context.Context, customerID string, start, end time.Time, page pagination.Request) (pagination.Page[domain.Transaction], error) {
	return findTransactionsByCustomerAndDate(ctx, r.Pool, customerID, start, end, page)
}

func findTransactionsByCustomerAndDate(ctx context.Context, q querier, customerID string, start, end time.Time, page pagination.Request) (pagination.Page[domain.Transaction], error) {
	countQuery := `
		SELECT COUNT(*)
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.customer_id = $1 AND t.date BETWEEN $2 AND $3;
	`
	total, err := count(ctx, q, countQuery, customerID, start, end)
	if err != nil {
		return pagination.Page[domain.Transaction]{}, translateError(err, "failed to count customer transactions")
	}

	query := `
		SELECT t.transaction_id, t.account_id, t.date, t.transaction_type, t.amount, t.balance, t.description
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.customer_id = $1 AND t.date BETWEEN $2 AND $3
		ORDER BY t.date, t.transaction_id
		LIMIT $4 OFFSET $5;
	`
	return queryTransactionPage(ctx, q, page, total, query, customerID, start, end, page.Limit(), page.Offset())
}

func queryTransactionPage(ctx context.Context, q querier, page pagination.Request, total int64, query string, args ...any) (pagination.Page[domain.Transaction], error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return pagination.Page[domain.Transaction]{}, translateError(err, "failed to query transactions")
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0, page.Limit())
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return pagination.Page[domain.Transaction]{}, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[domain.Transaction]{}, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return pagination.NewPage(transactions, page, total), nil
}

// UpdateTransaction overwrites the stored transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	m := mapping.ToModelTransaction(transaction)
	query := `
		UPDATE transactions
		SET account_id = $2, date = $3, transaction_type = $4, amount = $5, balance = $6, description = $7
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.Date,
		m.TransactionType,
		m.Amount,
		m.Balance,
		m.Description,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update transaction %s", m.TransactionID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction record.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to delete transaction %s", transactionID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
