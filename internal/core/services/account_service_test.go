package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/core/services"
	"github.com/SscSPs/banking_services/internal/dto"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockRepo  *MockAccountRepository
	customers *MockCustomerGateway
	service   portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockAccountRepository)
	suite.customers = new(MockCustomerGateway)
	suite.service = services.NewAccountService(suite.mockRepo, suite.customers)
}

func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
	suite.customers.AssertExpectations(suite.T())
}

func activeCustomer(id string) gateways.CustomerAvailable {
	return gateways.CustomerAvailable{Customer: domain.Customer{
		CustomerID: id,
		Person:     domain.Person{Name: "JOSE LEMA"},
		Status:     domain.StatusActive,
	}}
}

func activeAccount(id string, balance string) *domain.Account {
	return &domain.Account{
		AccountID:     id,
		CustomerID:    "cust-1",
		AccountNumber: "4785961230",
		AccountType:   "SAVINGS",
		Balance:       decimal.RequireFromString(balance),
		Status:        domain.StatusActive,
	}
}

func (suite *AccountServiceTestSuite) createRequest() dto.CreateAccountRequest {
	balance := decimal.RequireFromString("1000.00")
	return dto.CreateAccountRequest{
		CustomerID:    "cust-1",
		AccountNumber: "4785961230",
		AccountType:   "SAVINGS",
		Balance:       &balance,
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	req := suite.createRequest()
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, req.AccountNumber, "").Return(nil, apperrors.ErrNotFound).Once()
	suite.customers.On("LookupCustomer", suite.ctx, "cust-1").Return(activeCustomer("cust-1")).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Status == domain.StatusActive && a.Balance.Equal(decimal.NewFromInt(1000))
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal(req.AccountNumber, account.AccountNumber)
	suite.Equal(domain.StatusActive, account.Status)
	suite.False(account.CreatedAt.IsZero())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultsBalanceToZero() {
	req := suite.createRequest()
	req.Balance = nil
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, req.AccountNumber, "").Return(nil, apperrors.ErrNotFound).Once()
	suite.customers.On("LookupCustomer", suite.ctx, "cust-1").Return(activeCustomer("cust-1")).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, req)

	suite.Require().NoError(err)
	suite.True(account.Balance.IsZero())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeOpeningBalance() {
	req := suite.createRequest()
	negative := decimal.RequireFromString("-1.00")
	req.Balance = &negative

	account, err := suite.service.CreateAccount(suite.ctx, req)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateNumber() {
	req := suite.createRequest()
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, req.AccountNumber, "").Return(activeAccount("other", "0"), nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, req)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, apperrors.ErrDuplicateAccountNumber)
	suite.Equal("The account number must be unique", apperrors.Message(err))
	suite.customers.AssertNotCalled(suite.T(), "LookupCustomer", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateOnInsert() {
	req := suite.createRequest()
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, req.AccountNumber, "").Return(nil, apperrors.ErrNotFound).Once()
	suite.customers.On("LookupCustomer", suite.ctx, "cust-1").Return(activeCustomer("cust-1")).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicateAccountNumber)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CustomerNotRegistered() {
	req := suite.createRequest()
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, req.AccountNumber, "").Return(nil, apperrors.ErrNotFound).Once()
	suite.customers.On("LookupCustomer", suite.ctx, "cust-1").Return(gateways.CustomerNotRegistered{ID: "cust-1"}).Once()

	_, err := suite.service.CreateAccount(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrInvalidCustomer)
	suite.Equal("The customer with id cust-1 not found", apperrors.Message(err))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CustomerInactive() {
	req := suite.createRequest()
	inactive := activeCustomer("cust-1")
	inactive.Customer.Status = domain.StatusInactive
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, req.AccountNumber, "").Return(nil, apperrors.ErrNotFound).Once()
	suite.customers.On("LookupCustomer", suite.ctx, "cust-1").Return(inactive).Once()

	_, err := suite.service.CreateAccount(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrInvalidCustomer)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CustomerServiceUnavailable() {
	req := suite.createRequest()
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, req.AccountNumber, "").Return(nil, apperrors.ErrNotFound).Once()
	suite.customers.On("LookupCustomer", suite.ctx, "cust-1").
		Return(gateways.CustomerUnavailable{ID: "cust-1", Err: assert.AnError}).Once()

	_, err := suite.service.CreateAccount(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.NotErrorIs(err, apperrors.ErrInvalidCustomer)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(activeAccount("acc-1", "10"), nil).Once()

	account, err := suite.service.GetAccountByID(suite.ctx, "acc-1")

	suite.Require().NoError(err)
	suite.Equal("acc-1", account.AccountID)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Absent() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(suite.ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("Account not found", apperrors.Message(err))
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_InactiveIsNotFound() {
	inactive := activeAccount("acc-1", "10")
	inactive.Status = domain.StatusInactive
	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(inactive, nil).Once()

	_, err := suite.service.GetAccountByID(suite.ctx, "acc-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("The account with id acc-1 not found", apperrors.Message(err))
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_StoreError() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(nil, assert.AnError).Once()

	_, err := suite.service.GetAccountByID(suite.ctx, "acc-1")

	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	page := pagination.NewRequest(0, 10)
	expected := pagination.NewPage([]domain.Account{*activeAccount("acc-1", "1")}, page, 1)
	suite.mockRepo.On("ListActiveAccounts", suite.ctx, page).Return(expected, nil).Once()

	got, err := suite.service.ListAccounts(suite.ctx, page)

	suite.Require().NoError(err)
	suite.Equal(expected, got)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_KeepsOwnNumberAndBalance() {
	existing := activeAccount("acc-1", "250.00")
	req := dto.UpdateAccountRequest{CustomerID: "cust-1", AccountNumber: existing.AccountNumber, AccountType: "CHECKING"}

	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(existing, nil).Once()
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, req.AccountNumber, existing.AccountNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.customers.On("LookupCustomer", suite.ctx, "cust-1").Return(activeCustomer("cust-1")).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountType == "CHECKING" && a.Balance.Equal(decimal.RequireFromString("250.00"))
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(suite.ctx, "acc-1", req)

	suite.Require().NoError(err)
	suite.Equal("CHECKING", account.AccountType)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NumberTakenByAnother() {
	existing := activeAccount("acc-1", "0")
	req := dto.UpdateAccountRequest{CustomerID: "cust-1", AccountNumber: "1111111111", AccountType: "SAVINGS"}

	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(existing, nil).Once()
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, "1111111111", existing.AccountNumber).Return(activeAccount("acc-2", "0"), nil).Once()

	_, err := suite.service.UpdateAccount(suite.ctx, "acc-1", req)

	suite.ErrorIs(err, apperrors.ErrDuplicateAccountNumber)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Inactive() {
	inactive := activeAccount("acc-1", "0")
	inactive.Status = domain.StatusInactive
	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(inactive, nil).Once()

	_, err := suite.service.UpdateAccount(suite.ctx, "acc-1", dto.UpdateAccountRequest{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_SoftDeletes() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(activeAccount("acc-1", "5"), nil).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == "acc-1" && a.Status == domain.StatusInactive
	})).Return(nil).Once()

	err := suite.service.DeactivateAccount(suite.ctx, "acc-1")

	suite.NoError(err)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_AlreadyInactive() {
	inactive := activeAccount("acc-1", "5")
	inactive.Status = domain.StatusInactive
	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(inactive, nil).Once()

	err := suite.service.DeactivateAccount(suite.ctx, "acc-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
