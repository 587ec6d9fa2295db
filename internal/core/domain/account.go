package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a customer's bank account within the core domain.
type Account struct {
	AccountID     string          `json:"id"`            // Primary Key (UUID)
	CustomerID    string          `json:"customerId"`    // Owner, lives in the customer service
	AccountNumber string          `json:"accountNumber"` // 10 digits, unique
	AccountType   string          `json:"accountType"`   // Free text (e.g. SAVINGS)
	Balance       decimal.Decimal `json:"balance"`       // Current balance, moved only by postings
	Status        Status          `json:"status"`
	AuditFields
}

// IsActive reports whether the account can be read or posted against.
func (a Account) IsActive() bool {
	return a.Status.IsActive()
}

// BalanceAfter returns the balance the account would have after applying amount,
// and whether that balance is allowed (never below zero).
func (a Account) BalanceAfter(amount decimal.Decimal) (decimal.Decimal, bool) {
	next := a.Balance.Add(amount)
	return next, !next.IsNegative()
}
