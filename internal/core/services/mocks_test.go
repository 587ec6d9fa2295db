package services_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

// --- Account repository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string, excludeNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber, excludeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListActiveAccounts(ctx context.Context, page pagination.Request) (pagination.Page[domain.Account], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.Page[domain.Account]), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

// --- Transaction repository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, page pagination.Request) (pagination.Page[domain.Transaction], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.Page[domain.Transaction]), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByCustomerAndDate(ctx context.Context, customerID string, start, end time.Time, page pagination.Request) (pagination.Page[domain.Transaction], error) {
	args := m.Called(ctx, customerID, start, end, page)
	return args.Get(0).(pagination.Page[domain.Transaction]), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return m.Called(ctx, transactionID).Error(0)
}

// --- Unit of work ---

type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(portsrepo.UnitOfWork), args.Error(1)
}

// MockUnitOfWork mocks the scope and both of its stores.
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Accounts() portsrepo.AccountLocker         { return m }
func (m *MockUnitOfWork) Transactions() portsrepo.TransactionRecorder { return m }

func (m *MockUnitOfWork) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockUnitOfWork) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error {
	return m.Called(ctx, accountID, balance, now).Error(0)
}

func (m *MockUnitOfWork) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Customer gateway ---

type MockCustomerGateway struct {
	mock.Mock
}

func (m *MockCustomerGateway) LookupCustomer(ctx context.Context, customerID string) gateways.CustomerLookup {
	return m.Called(ctx, customerID).Get(0).(gateways.CustomerLookup)
}

// --- Customer and person repositories ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, page pagination.Request) (pagination.Page[domain.Customer], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.Page[domain.Customer]), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) FindPersonByIdentification(ctx context.Context, identification string, excludeIdentification string) (*domain.Person, error) {
	args := m.Called(ctx, identification, excludeIdentification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) ListPersons(ctx context.Context, page pagination.Request) (pagination.Page[domain.Person], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.Page[domain.Person]), args.Error(1)
}

func (m *MockPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	return m.Called(ctx, person).Error(0)
}

func (m *MockPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	return m.Called(ctx, person).Error(0)
}

func (m *MockPersonRepository) DeletePerson(ctx context.Context, personID string) error {
	return m.Called(ctx, personID).Error(0)
}

// --- In-memory ledger ---

// fakeLedger is an in-memory UnitOfWorkFactory. A unit holds the ledger lock
// from Begin until Commit or Rollback, which serializes postings the way the
// account row lock does.
type fakeLedger struct {
	mu           sync.Mutex
	accounts     map[string]domain.Account
	transactions []domain.Transaction
	commits      int
	rollbacks    int
	// conflicts is the number of upcoming commits that fail as serialization failures.
	conflicts int
}

func newFakeLedger(accounts ...domain.Account) *fakeLedger {
	l := &fakeLedger{accounts: map[string]domain.Account{}}
	for _, a := range accounts {
		l.accounts[a.AccountID] = a
	}
	return l
}

func (l *fakeLedger) Begin(context.Context) (portsrepo.UnitOfWork, error) {
	l.mu.Lock()
	return &fakeUnit{ledger: l, balances: map[string]decimal.Decimal{}}, nil
}

func (l *fakeLedger) balance(accountID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.accounts[accountID].Balance
}

type fakeUnit struct {
	ledger   *fakeLedger
	staged   []domain.Transaction
	balances map[string]decimal.Decimal
	done     bool
}

func (u *fakeUnit) Accounts() portsrepo.AccountLocker         { return u }
func (u *fakeUnit) Transactions() portsrepo.TransactionRecorder { return u }

func (u *fakeUnit) FindAccountByIDForUpdate(_ context.Context, accountID string) (*domain.Account, error) {
	account, ok := u.ledger.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

func (u *fakeUnit) UpdateAccountBalance(_ context.Context, accountID string, balance decimal.Decimal, _ time.Time) error {
	u.balances[accountID] = balance
	return nil
}

func (u *fakeUnit) SaveTransaction(_ context.Context, transaction domain.Transaction) error {
	u.staged = append(u.staged, transaction)
	return nil
}

func (u *fakeUnit) Commit(context.Context) error {
	if u.done {
		return nil
	}
	l := u.ledger
	if l.conflicts > 0 {
		l.conflicts--
		return fmt.Errorf("failed to commit transaction: %w", apperrors.ErrConcurrentUpdate)
	}
	for id, balance := range u.balances {
		account := l.accounts[id]
		account.Balance = balance
		l.accounts[id] = account
	}
	l.transactions = append(l.transactions, u.staged...)
	l.commits++
	u.done = true
	l.mu.Unlock()
	return nil
}

func (u *fakeUnit) Rollback(context.Context) error {
	if u.done {
		return nil
	}
	u.ledger.rollbacks++
	u.done = true
	u.ledger.mu.Unlock()
	return nil
}
