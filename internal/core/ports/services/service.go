package services

// AccountServiceContainer holds the services of the account binary.
// It is the main entry point for the account handlers.
type AccountServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Report      ReportSvc
}

// CustomerServiceContainer holds the services of the customer binary.
type CustomerServiceContainer struct {
	Customer CustomerSvcFacade
	Person   PersonSvcFacade
}
