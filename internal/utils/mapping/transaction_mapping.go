package mapping

import (
	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		Date:            d.Date,
		TransactionType: string(d.TransactionType),
		Amount:          d.Amount,
		Balance:         d.Balance,
	}
	if d.Description != "" {
		desc := d.Description
		m.Description = &desc
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		Date:            m.Date,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Balance:         m.Balance,
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
