package repositories

// AccountRepositoryProvider holds the repositories used by the account service.
type AccountRepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	UnitOfWork      UnitOfWorkFactory
}

// CustomerRepositoryProvider holds the repositories used by the customer service.
type CustomerRepositoryProvider struct {
	CustomerRepo CustomerRepositoryFacade
	PersonRepo   PersonRepositoryFacade
}
