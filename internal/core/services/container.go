package services

import (
	"github.com/SscSPs/banking_services/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/platform/config"
	"github.com/SscSPs/banking_services/internal/platform/metrics"
	"github.com/SscSPs/banking_services/internal/platform/resilience"
)

// NewAccountServiceContainer wires the services of the account binary.
func NewAccountServiceContainer(cfg *config.Config, repos portsrepo.AccountRepositoryProvider, customers gateways.CustomerGateway, m *metrics.Metrics) *portssvc.AccountServiceContainer {
	return &portssvc.AccountServiceContainer{
		Account: NewAccountService(repos.AccountRepo, customers),
		Transaction: NewTransactionService(
			repos.TransactionRepo,
			repos.UnitOfWork,
			WithPostingRetry(resilience.Config{
				MaxRetries:     cfg.PostingMaxRetries,
				InitialBackoff: cfg.PostingRetryBackoff,
			}),
			WithPostingMetrics(m),
		),
		Report: NewReportService(repos.TransactionRepo, customers),
	}
}

// NewCustomerServiceContainer wires the services of the customer binary.
func NewCustomerServiceContainer(repos portsrepo.CustomerRepositoryProvider) *portssvc.CustomerServiceContainer {
	return &portssvc.CustomerServiceContainer{
		Customer: NewCustomerService(repos.CustomerRepo, repos.PersonRepo),
		Person:   NewPersonService(repos.PersonRepo),
	}
}
