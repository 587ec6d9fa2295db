package pgsql

import (
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewAccountRepositoryProvider wires the account service repositories on dbPool.
func NewAccountRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.AccountRepositoryProvider {
	return portsrepo.AccountRepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		UnitOfWork:      newPgxUnitOfWorkFactory(dbPool),
	}
}

// NewCustomerRepositoryProvider wires the customer service repositories on dbPool.
func NewCustomerRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.CustomerRepositoryProvider {
	return portsrepo.CustomerRepositoryProvider{
		CustomerRepo: newPgxCustomerRepository(dbPool),
		PersonRepo:   newPgxPersonRepository(dbPool),
	}
}
