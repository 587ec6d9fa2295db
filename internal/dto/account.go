package dto

import (
	"time"

	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	CustomerID    string           `json:"customerId" binding:"required,max=36"`
	AccountNumber string           `json:"accountNumber" binding:"required,len=10,number"`
	AccountType   string           `json:"accountType" binding:"required,max=255"`
	Balance       *decimal.Decimal `json:"balance" binding:"omitempty,decimal18_2" swaggertype:"string" example:"1000.00"` // Opening balance, defaults to zero
}

// UpdateAccountRequest defines a full replacement of an account's details.
// The balance is not part of it: balances only move through postings.
type UpdateAccountRequest struct {
	CustomerID    string `json:"customerId" binding:"required,max=36"`
	AccountNumber string `json:"accountNumber" binding:"required,len=10,number"`
	AccountType   string `json:"accountType" binding:"required,max=255"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string" example:"1500.00"`
	Status        domain.Status   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		CustomerID:    acc.CustomerID,
		AccountNumber: acc.AccountNumber,
		AccountType:   acc.AccountType,
		Balance:       acc.Balance.Round(2),
		Status:        acc.Status,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}
