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
	"github.com/SscSPs/banking_services/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/dto"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

const (
	msgAccountNotFound        = "Account not found"
	msgDuplicateAccountNumber = "The account number must be unique"
	msgInvalidAmount          = "The amount is not valid"
	msgCustomerUnavailable    = "The customer service is unavailable"
)

// accountNotFound is returned for accounts that exist but are inactive.
func accountNotFound(accountID string) error {
	return apperrors.NotFound(fmt.Sprintf("The account with id %s not found", accountID))
}

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	customers   gateways.CustomerGateway
}

// NewAccountService creates a new account service that validates owners against customers.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, customers gateways.CustomerGateway) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: repo,
		customers:   customers,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}
	if balance.IsNegative() {
		return nil, apperrors.Validation(apperrors.ErrInvalidAmount, msgInvalidAmount)
	}

	if err := s.ensureNumberAvailable(ctx, req.AccountNumber, ""); err != nil {
		return nil, err
	}
	if err := s.ensureActiveCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		CustomerID:    req.CustomerID,
		AccountNumber: req.AccountNumber,
		AccountType:   req.AccountType,
		Balance:       balance,
		Status:        domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race against a concurrent create with the same number.
			return nil, apperrors.Validation(apperrors.ErrDuplicateAccountNumber, msgDuplicateAccountNumber)
		}
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("customer_id", account.CustomerID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(msgAccountNotFound)
		}
		s.LogError(ctx, err, "Failed to find account by ID",
			slog.String("account_id", accountID))
		return nil, err
	}

	if !account.IsActive() {
		s.LogDebug(ctx, "Account found but inactive",
			slog.String("account_id", accountID))
		return nil, accountNotFound(accountID)
	}

	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, page pagination.Request) (pagination.Page[domain.Account], error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.Int("page", page.Page),
			slog.Int("size", page.Size))
		return pagination.Page[domain.Account]{}, fmt.Errorf("failed to list accounts: %w", err)
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(accounts.Items)))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err // GetAccountByID already logs errors
	}

	if err := s.ensureNumberAvailable(ctx, req.AccountNumber, account.AccountNumber); err != nil {
		return nil, err
	}
	if err := s.ensureActiveCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	account.CustomerID = req.CustomerID
	account.AccountNumber = req.AccountNumber
	account.AccountType = req.AccountType
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.save(ctx, *account); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) error {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	account.Status = domain.StatusInactive
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.save(ctx, *account); err != nil {
		return err
	}

	s.LogInfo(ctx, "Account deactivated successfully",
		slog.String("account_id", accountID))
	return nil
}

// save is the single update path shared by update and deactivation.
func (s *accountService) save(ctx context.Context, account domain.Account) error {
	err := s.accountRepo.UpdateAccount(ctx, account)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrDuplicate):
		return apperrors.Validation(apperrors.ErrDuplicateAccountNumber, msgDuplicateAccountNumber)
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NotFound(msgAccountNotFound)
	default:
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", account.AccountID))
		return err
	}
}

// ensureNumberAvailable fails when another account already holds number.
// currentNumber is the number the account being updated keeps; empty on create.
func (s *accountService) ensureNumberAvailable(ctx context.Context, number, currentNumber string) error {
	_, err := s.accountRepo.FindAccountByNumber(ctx, number, currentNumber)
	switch {
	case err == nil:
		return apperrors.Validation(apperrors.ErrDuplicateAccountNumber, msgDuplicateAccountNumber)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		s.LogError(ctx, err, "Failed to check account number",
			slog.String("account_number", number))
		return err
	}
}

// ensureActiveCustomer accepts only customers the customer service knows and reports active.
func (s *accountService) ensureActiveCustomer(ctx context.Context, customerID string) error {
	switch result := s.customers.LookupCustomer(ctx, customerID).(type) {
	case gateways.CustomerAvailable:
		if result.Customer.IsActive() {
			return nil
		}
	case gateways.CustomerUnavailable:
		return apperrors.Unavailable(msgCustomerUnavailable, result.Err)
	}
	return apperrors.Validation(apperrors.ErrInvalidCustomer,
		fmt.Sprintf("The customer with id %s not found", customerID))
}
