package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a posting.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
)

// IsValid reports whether t is one of the recognized types. Matching is case-sensitive.
func (t TransactionType) IsValid() bool {
	return t == Deposit || t == Withdrawal
}

// AcceptsAmount reports whether the sign of amount agrees with the type:
// deposits are strictly positive, withdrawals strictly negative.
func (t TransactionType) AcceptsAmount(amount decimal.Decimal) bool {
	switch t {
	case Deposit:
		return amount.IsPositive()
	case Withdrawal:
		return amount.IsNegative()
	default:
		return false
	}
}

// Transaction is a single posting against one account.
type Transaction struct {
	TransactionID   string          `json:"id"`
	AccountID       string          `json:"accountId"`
	Date            time.Time       `json:"date"`            // Server-assigned on creation
	TransactionType TransactionType `json:"transactionType"` // DEPOSIT or WITHDRAWAL
	Amount          decimal.Decimal `json:"amount"`          // Signed
	Balance         decimal.Decimal `json:"balance"`         // Account balance right after this posting
	Description     string          `json:"description"`     // Free-text metadata, the only updatable field
}
