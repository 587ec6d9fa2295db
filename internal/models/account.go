package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID     string          `db:"account_id"`
	CustomerID    string          `db:"customer_id"`
	AccountNumber string          `db:"account_number"` // UNIQUE
	AccountType   string          `db:"account_type"`
	Balance       decimal.Decimal `db:"balance"` // NUMERIC(20,2)
	Status        bool            `db:"status"`
	AuditFields
}

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"` // FK -> accounts.account_id
	Date            time.Time       `db:"date"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Balance         decimal.Decimal `db:"balance"`
	Description     *string         `db:"description"` // Nullable
}
