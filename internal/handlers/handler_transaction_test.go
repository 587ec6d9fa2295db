package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/dto"
	"github.com/SscSPs/banking_services/internal/handlers"
	"github.com/SscSPs/banking_services/internal/platform/config"
	"github.com/SscSPs/banking_services/internal/platform/metrics"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
	"github.com/SscSPs/banking_services/internal/utils/validation"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	mockReportService      *MockReportService
}

func (suite *TransactionHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	validation.RegisterWithGin()
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.mockTransactionService = new(MockTransactionService)
	suite.mockReportService = new(MockReportService)

	err := handlers.RegisterAccountRoutes(suite.router, testConfig(), metrics.NewMetrics(config.AccountService),
		&portssvc.AccountServiceContainer{
			Account:     new(MockAccountService),
			Transaction: suite.mockTransactionService,
			Report:      suite.mockReportService,
		})
	suite.Require().NoError(err)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	accountID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       accountID,
		Date:            time.Now().UTC(),
		TransactionType: domain.TransactionType("DEPOSIT"),
		Amount:          decimal.NewFromInt(500),
		Balance:         decimal.NewFromInt(1500),
	}
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.AccountID == accountID && req.TransactionType == "DEPOSIT" && req.Amount.Equal(decimal.NewFromInt(500))
	})).Return(txn, nil).Once()

	w := performRequest(suite.router, http.MethodPost, "/v1/transactions", map[string]any{
		"accountId":       accountID,
		"transactionType": "DEPOSIT",
		"amount":          "500.00",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(1500)))
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingAmount() {
	w := performRequest(suite.router, http.MethodPost, "/v1/transactions", map[string]any{
		"accountId":       uuid.NewString(),
		"transactionType": "DEPOSIT",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"amount: Cannot be blank"}, decodeError(w).Details)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InsufficientBalanceIsConflict() {
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.Validation(apperrors.ErrInsufficientBalance, "Insufficient account balance")).Once()

	w := performRequest(suite.router, http.MethodPost, "/v1/transactions", map[string]any{
		"accountId":       uuid.NewString(),
		"transactionType": "WITHDRAWAL",
		"amount":          "-1500.01",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal([]string{"Insufficient account balance"}, decodeError(w).Details)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_UnknownAccount() {
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.NotFound("Account not found")).Once()

	w := performRequest(suite.router, http.MethodPost, "/v1/transactions", map[string]any{
		"accountId":       uuid.NewString(),
		"transactionType": "DEPOSIT",
		"amount":          "10",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions() {
	req := pagination.NewRequest(0, 10)
	suite.mockTransactionService.On("ListTransactions", mock.Anything, req).
		Return(pagination.NewPage([]domain.Transaction{}, req, 0), nil).Once()

	w := performRequest(suite.router, http.MethodGet, "/v1/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"content":[],"page":0,"size":10,"totalElements":0,"totalPages":0}`, w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_DescriptionOnly() {
	id := uuid.NewString()
	description := "rent"
	txn := &domain.Transaction{TransactionID: id, Description: description}
	suite.mockTransactionService.On("UpdateTransaction", mock.Anything, id, mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
		return req.Description != nil && *req.Description == description
	})).Return(txn, nil).Once()

	w := performRequest(suite.router, http.MethodPut, "/v1/transactions/"+id, map[string]any{"description": description})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	id := uuid.NewString()
	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, id).
		Return(apperrors.NotFound("Transaction not found")).Once()

	w := performRequest(suite.router, http.MethodDelete, "/v1/transactions/"+id, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal([]string{"Transaction not found"}, decodeError(w).Details)
}

func (suite *TransactionHandlerTestSuite) TestReport_ZonelessDatesAreUTC() {
	customerID := uuid.NewString()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	report := &domain.Report{
		Customer:     domain.PlaceholderCustomer(customerID),
		Transactions: pagination.NewPage([]domain.Transaction{}, pagination.NewRequest(0, 10), 0),
	}

	suite.mockReportService.On("GetCustomerReport", mock.Anything, customerID,
		mock.MatchedBy(start.Equal), mock.MatchedBy(end.Equal), pagination.NewRequest(0, 10)).
		Return(report, nil).Once()

	url := "/v1/customers/" + customerID + "/transactions/report?startDate=2024-01-01T00:00:00&endDate=2024-01-31T23:59:59"
	w := performRequest(suite.router, http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(customerID, resp.Customer.CustomerID)
	suite.Equal(domain.UnavailableCustomerName, resp.Customer.Name)
	suite.mockReportService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestReport_OffsetDates() {
	customerID := uuid.NewString()
	start := time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 5, 0, 0, 0, time.UTC)
	report := &domain.Report{
		Customer:     domain.PlaceholderCustomer(customerID),
		Transactions: pagination.NewPage([]domain.Transaction{}, pagination.NewRequest(2, 5), 0),
	}

	suite.mockReportService.On("GetCustomerReport", mock.Anything, customerID,
		mock.MatchedBy(start.Equal), mock.MatchedBy(end.Equal), pagination.NewRequest(2, 5)).
		Return(report, nil).Once()

	url := "/v1/customers/" + customerID + "/transactions/report?startDate=2024-01-01T00:00:00-05:00&endDate=2024-02-01T00:00:00-05:00&page=2&size=5"
	w := performRequest(suite.router, http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestReport_InvalidDates() {
	url := "/v1/customers/" + uuid.NewString() + "/transactions/report?startDate=yesterday&endDate=2024-13-01T00:00:00"
	w := performRequest(suite.router, http.MethodGet, url, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{
		"startDate: Must be an ISO-8601 date-time",
		"endDate: Must be an ISO-8601 date-time",
	}, decodeError(w).Details)
	suite.mockReportService.AssertNotCalled(suite.T(), "GetCustomerReport",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestReport_MissingDates() {
	w := performRequest(suite.router, http.MethodGet, "/v1/customers/"+uuid.NewString()+"/transactions/report", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(decodeError(w).Details, "startDate: Cannot be blank")
	suite.Contains(decodeError(w).Details, "endDate: Cannot be blank")
}

func (suite *TransactionHandlerTestSuite) TestReport_EndBeforeStart() {
	suite.mockReportService.On("GetCustomerReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.FieldErrors{{Field: "endDate", Message: "Should not be before startDate"}}).Once()

	url := "/v1/customers/" + uuid.NewString() + "/transactions/report?startDate=2024-02-01T00:00:00&endDate=2024-01-01T00:00:00"
	w := performRequest(suite.router, http.MethodGet, url, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"endDate: Should not be before startDate"}, decodeError(w).Details)
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
