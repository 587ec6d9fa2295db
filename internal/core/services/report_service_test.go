package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/core/ports/gateways"
	"github.com/SscSPs/banking_services/internal/core/services"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

var (
	reportStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	reportEnd   = time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	reportPage  = pagination.NewRequest(0, 10)
)

func reportTransactions() pagination.Page[domain.Transaction] {
	return pagination.NewPage([]domain.Transaction{
		{TransactionID: "t-1", AccountID: "acc-1", TransactionType: domain.Deposit},
	}, reportPage, 1)
}

func TestGetCustomerReport_JoinsCustomerAndTransactions(t *testing.T) {
	repo := new(MockTransactionRepository)
	customers := new(MockCustomerGateway)
	repo.On("FindTransactionsByCustomerAndDate", mock.Anything, "cust-1", reportStart, reportEnd, reportPage).
		Return(reportTransactions(), nil).Once()
	customers.On("LookupCustomer", mock.Anything, "cust-1").Return(activeCustomer("cust-1")).Once()

	report, err := services.NewReportService(repo, customers).
		GetCustomerReport(context.Background(), "cust-1", reportStart, reportEnd, reportPage)

	require.NoError(t, err)
	assert.Equal(t, "JOSE LEMA", report.Customer.Name)
	assert.Len(t, report.Transactions.Items, 1)
	repo.AssertExpectations(t)
	customers.AssertExpectations(t)
}

func TestGetCustomerReport_PlaceholderWhenCustomerMissing(t *testing.T) {
	lookups := []gateways.CustomerLookup{
		gateways.CustomerNotRegistered{ID: "cust-1"},
		gateways.CustomerUnavailable{ID: "cust-1", Err: assert.AnError},
	}
	for _, lookup := range lookups {
		repo := new(MockTransactionRepository)
		customers := new(MockCustomerGateway)
		repo.On("FindTransactionsByCustomerAndDate", mock.Anything, "cust-1", reportStart, reportEnd, reportPage).
			Return(reportTransactions(), nil).Once()
		customers.On("LookupCustomer", mock.Anything, "cust-1").Return(lookup).Once()

		report, err := services.NewReportService(repo, customers).
			GetCustomerReport(context.Background(), "cust-1", reportStart, reportEnd, reportPage)

		require.NoError(t, err, "%T", lookup)
		assert.Equal(t, "cust-1", report.Customer.CustomerID)
		assert.Equal(t, domain.UnavailableCustomerName, report.Customer.Name)
		assert.Len(t, report.Transactions.Items, 1)
	}
}

func TestGetCustomerReport_StoreFailureFails(t *testing.T) {
	repo := new(MockTransactionRepository)
	customers := new(MockCustomerGateway)
	repo.On("FindTransactionsByCustomerAndDate", mock.Anything, "cust-1", reportStart, reportEnd, reportPage).
		Return(pagination.Page[domain.Transaction]{}, assert.AnError).Once()
	customers.On("LookupCustomer", mock.Anything, "cust-1").Return(activeCustomer("cust-1")).Maybe()

	report, err := services.NewReportService(repo, customers).
		GetCustomerReport(context.Background(), "cust-1", reportStart, reportEnd, reportPage)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetCustomerReport_EndBeforeStart(t *testing.T) {
	repo := new(MockTransactionRepository)
	customers := new(MockCustomerGateway)

	_, err := services.NewReportService(repo, customers).
		GetCustomerReport(context.Background(), "cust-1", reportEnd, reportStart, reportPage)

	assert.ErrorIs(t, err, apperrors.ErrFieldValidation)
	repo.AssertNotCalled(t, "FindTransactionsByCustomerAndDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	customers.AssertNotCalled(t, "LookupCustomer", mock.Anything, mock.Anything)
}

func TestGetCustomerReport_EmptyRange(t *testing.T) {
	repo := new(MockTransactionRepository)
	customers := new(MockCustomerGateway)
	repo.On("FindTransactionsByCustomerAndDate", mock.Anything, "cust-1", reportStart, reportEnd, reportPage).
		Return(pagination.NewPage[domain.Transaction](nil, reportPage, 0), nil).Once()
	customers.On("LookupCustomer", mock.Anything, "cust-1").Return(activeCustomer("cust-1")).Once()

	report, err := services.NewReportService(repo, customers).
		GetCustomerReport(context.Background(), "cust-1", reportStart, reportEnd, reportPage)

	require.NoError(t, err)
	assert.NotNil(t, report.Transactions.Items)
	assert.Empty(t, report.Transactions.Items)
}
