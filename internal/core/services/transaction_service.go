package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/dto"
	"github.com/SscSPs/banking_services/internal/platform/metrics"
	"github.com/SscSPs/banking_services/internal/platform/resilience"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
	"github.com/SscSPs/banking_services/internal/utils/validation"
)

const (
	msgTransactionNotFound  = "Transaction not found"
	msgInvalidType          = "The transaction type is not valid"
	msgInsufficientBalance  = "Insufficient account balance"
	msgConcurrentAccountUse = "The account was modified concurrently, please retry"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	unitOfWork      portsrepo.UnitOfWorkFactory
	retry           resilience.Config
	metrics         *metrics.Metrics
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithPostingRetry sets how often a posting is retried after a concurrent update.
func WithPostingRetry(cfg resilience.Config) TransactionServiceOption {
	return func(s *transactionService) {
		s.retry = cfg
	}
}

// WithPostingMetrics counts postings and retries.
func WithPostingMetrics(m *metrics.Metrics) TransactionServiceOption {
	return func(s *transactionService) {
		s.metrics = m
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, uow portsrepo.UnitOfWorkFactory, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
		unitOfWork:      uow,
		retry:           resilience.Config{MaxRetries: 3, InitialBackoff: 20 * time.Millisecond},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the request and posts it. Type and amount are
// checked before the account is touched; the balance check and both writes
// happen inside one unit of work with the account row locked.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnType := domain.TransactionType(req.TransactionType)
	if !txnType.IsValid() {
		return nil, s.rejected(txnType, apperrors.Validation(apperrors.ErrInvalidTransactionType, msgInvalidType))
	}

	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount.IsZero() || !txnType.AcceptsAmount(amount) {
		return nil, s.rejected(txnType, apperrors.Validation(apperrors.ErrInvalidAmount, msgInvalidAmount))
	}

	var posted domain.Transaction
	attempt := 0
	err := resilience.RetryIf(ctx, s.retry, isConcurrentUpdate, func() error {
		if attempt > 0 {
			s.countRetry()
			s.LogDebug(ctx, "Retrying posting after concurrent update",
				slog.String("account_id", req.AccountID),
				slog.Int("attempt", attempt))
		}
		attempt++

		var postErr error
		posted, postErr = s.post(ctx, req.AccountID, txnType, amount, req.Description)
		return postErr
	})
	if err != nil {
		if isConcurrentUpdate(err) {
			err = apperrors.NewAppError(apperrors.ErrValidation, msgConcurrentAccountUse, err)
		}
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			s.LogError(ctx, err, "Failed to post transaction",
				slog.String("account_id", req.AccountID))
		}
		return nil, s.rejected(txnType, err)
	}

	s.countPosting(txnType, "ok")
	s.LogInfo(ctx, "Transaction posted successfully",
		slog.String("transaction_id", posted.TransactionID),
		slog.String("account_id", posted.AccountID),
		slog.String("balance", posted.Balance.StringFixed(2)))
	return &posted, nil
}

// post runs one attempt of a posting in its own unit of work.
func (s *transactionService) post(ctx context.Context, accountID string, txnType domain.TransactionType, amount decimal.Decimal, description string) (domain.Transaction, error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		return domain.Transaction{}, err
	}
	// Rollback is a no-op once Commit succeeded.
	defer func() { _ = uow.Rollback(ctx) }()

	account, err := uow.Accounts().FindAccountByIDForUpdate(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Transaction{}, apperrors.NotFound(msgAccountNotFound)
		}
		return domain.Transaction{}, err
	}
	if !account.IsActive() {
		return domain.Transaction{}, accountNotFound(accountID)
	}

	balance, ok := account.BalanceAfter(amount)
	if !ok {
		return domain.Transaction{}, apperrors.Validation(apperrors.ErrInsufficientBalance, msgInsufficientBalance)
	}
	// The balance column holds at most 18 integer digits.
	if !validation.IsValidDecimal(balance.String()) {
		return domain.Transaction{}, apperrors.Validation(apperrors.ErrInvalidAmount, msgInvalidAmount)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       account.AccountID,
		Date:            now,
		TransactionType: txnType,
		Amount:          amount,
		Balance:         balance,
		Description:     description,
	}

	if err := uow.Transactions().SaveTransaction(ctx, txn); err != nil {
		return domain.Transaction{}, err
	}
	if err := uow.Accounts().UpdateAccountBalance(ctx, account.AccountID, balance, now); err != nil {
		return domain.Transaction{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return domain.Transaction{}, err
	}
	return txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(msgTransactionNotFound)
		}
		s.LogError(ctx, err, "Failed to find transaction by ID",
			slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, page pagination.Request) (pagination.Page[domain.Transaction], error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return pagination.Page[domain.Transaction]{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// UpdateTransaction only touches metadata, so balances never drift from the ledger.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Description == nil {
		s.LogDebug(ctx, "No fields provided for transaction update",
			slog.String("transaction_id", transactionID))
		return txn, nil
	}
	txn.Description = *req.Description

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(msgTransactionNotFound)
		}
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully",
		slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction removes the record only. The account balance is not recomputed.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := s.GetTransactionByID(ctx, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound(msgTransactionNotFound)
		}
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) rejected(txnType domain.TransactionType, err error) error {
	s.countPosting(txnType, postingResult(err))
	return err
}

func (s *transactionService) countPosting(txnType domain.TransactionType, result string) {
	if s.metrics == nil {
		return
	}
	label := string(txnType)
	if !txnType.IsValid() {
		label = "unknown"
	}
	s.metrics.IncrPosting(label, result)
}

func (s *transactionService) countRetry() {
	if s.metrics != nil {
		s.metrics.IncrPostingRetry()
	}
}

func isConcurrentUpdate(err error) bool {
	return errors.Is(err, apperrors.ErrConcurrentUpdate)
}

func postingResult(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidTransactionType):
		return "invalid_type"
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, apperrors.ErrConcurrentUpdate):
		return "concurrent_update"
	case errors.Is(err, apperrors.ErrNotFound):
		return "account_not_found"
	default:
		return "error"
	}
}
