package dto

import (
	"time"

	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to post a transaction.
// Type and sign rules are business rules and are checked by the service.
type CreateTransactionRequest struct {
	AccountID       string           `json:"accountId" binding:"required,max=36"`
	TransactionType string           `json:"transactionType" binding:"required,min=3,max=32" example:"DEPOSIT"`
	Amount          *decimal.Decimal `json:"amount" binding:"required,decimal18_2" swaggertype:"string" example:"500.00"`
	Description     string           `json:"description" binding:"max=255"`
}

// UpdateTransactionRequest carries the metadata a posted transaction may change.
type UpdateTransactionRequest struct {
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"id"`
	AccountID       string                 `json:"accountId"`
	Date            time.Time              `json:"date"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Amount          decimal.Decimal        `json:"amount" swaggertype:"string" example:"500.00"`
	Balance         decimal.Decimal        `json:"balance" swaggertype:"string" example:"1500.00"`
	Description     string                 `json:"description,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		AccountID:       t.AccountID,
		Date:            t.Date,
		TransactionType: t.TransactionType,
		Amount:          t.Amount.Round(2),
		Balance:         t.Balance.Round(2),
		Description:     t.Description,
	}
}
