package services

import (
	"context"

	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/dto"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

// PersonReaderSvc defines read operations for persons
type PersonReaderSvc interface {
	GetPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	ListPersons(ctx context.Context, page pagination.Request) (pagination.Page[domain.Person], error)

	// FindPersonByIdentification looks a person up by identification, ignoring
	// excludeIdentification so an entity can keep its own value on update.
	FindPersonByIdentification(ctx context.Context, identification, excludeIdentification string) (*domain.Person, error)
}

// PersonWriterSvc defines write operations for persons
type PersonWriterSvc interface {
	CreatePerson(ctx context.Context, req dto.PersonRequest) (*domain.Person, error)

	UpdatePerson(ctx context.Context, personID string, req dto.PersonRequest) (*domain.Person, error)

	// DeletePerson removes a person that no customer references.
	DeletePerson(ctx context.Context, personID string) error
}

// PersonSvcFacade combines all person-related service interfaces
type PersonSvcFacade interface {
	PersonReaderSvc
	PersonWriterSvc
}
