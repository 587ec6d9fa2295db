package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/dto"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

const (
	msgPersonNotFound      = "Person not found"
	msgIdentificationInUse = "The identification is already in use."
	msgPersonInUse         = "The person is linked to a customer and cannot be deleted"
)

// personService implements the PersonSvcFacade interface
type personService struct {
	BaseService
	personRepo portsrepo.PersonRepositoryFacade
}

// NewPersonService creates a new person service
func NewPersonService(repo portsrepo.PersonRepositoryFacade) portssvc.PersonSvcFacade {
	return &personService{personRepo: repo}
}

var _ portssvc.PersonSvcFacade = (*personService)(nil)

func (s *personService) CreatePerson(ctx context.Context, req dto.PersonRequest) (*domain.Person, error) {
	if err := s.ensureIdentificationAvailable(ctx, req.Identification, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	person := domain.Person{
		PersonID:       uuid.NewString(),
		Name:           req.Name,
		Gender:         req.Gender,
		Age:            req.Age,
		Identification: req.Identification,
		Address:        req.Address,
		Phone:          req.Phone,
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.personRepo.SavePerson(ctx, person); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Validation(apperrors.ErrDuplicateIdentification, msgIdentificationInUse)
		}
		s.LogError(ctx, err, "Failed to save person",
			slog.String("person_id", person.PersonID))
		return nil, err
	}

	s.LogInfo(ctx, "Person created successfully",
		slog.String("person_id", person.PersonID))
	return &person, nil
}

func (s *personService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(msgPersonNotFound)
		}
		s.LogError(ctx, err, "Failed to find person by ID",
			slog.String("person_id", personID))
		return nil, err
	}
	return person, nil
}

func (s *personService) FindPersonByIdentification(ctx context.Context, identification, excludeIdentification string) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByIdentification(ctx, identification, excludeIdentification)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(msgPersonNotFound)
		}
		s.LogError(ctx, err, "Failed to find person by identification")
		return nil, err
	}
	return person, nil
}

func (s *personService) ListPersons(ctx context.Context, page pagination.Request) (pagination.Page[domain.Person], error) {
	persons, err := s.personRepo.ListPersons(ctx, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list persons")
		return pagination.Page[domain.Person]{}, fmt.Errorf("failed to list persons: %w", err)
	}
	return persons, nil
}

// UpdatePerson replaces every field of the person.
func (s *personService) UpdatePerson(ctx context.Context, personID string, req dto.PersonRequest) (*domain.Person, error) {
	person, err := s.GetPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureIdentificationAvailable(ctx, req.Identification, person.Identification); err != nil {
		return nil, err
	}

	person.Name = req.Name
	person.Gender = req.Gender
	person.Age = req.Age
	person.Identification = req.Identification
	person.Address = req.Address
	person.Phone = req.Phone
	person.LastUpdatedAt = time.Now().UTC()

	if err := s.personRepo.UpdatePerson(ctx, *person); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.Validation(apperrors.ErrDuplicateIdentification, msgIdentificationInUse)
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NotFound(msgPersonNotFound)
		}
		s.LogError(ctx, err, "Failed to update person",
			slog.String("person_id", personID))
		return nil, err
	}

	s.LogInfo(ctx, "Person updated successfully",
		slog.String("person_id", personID))
	return person, nil
}

func (s *personService) DeletePerson(ctx context.Context, personID string) error {
	if _, err := s.GetPersonByID(ctx, personID); err != nil {
		return err
	}

	if err := s.personRepo.DeletePerson(ctx, personID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPersonInUse):
			return apperrors.Validation(apperrors.ErrPersonInUse, msgPersonInUse)
		case errors.Is(err, apperrors.ErrNotFound):
			return apperrors.NotFound(msgPersonNotFound)
		}
		s.LogError(ctx, err, "Failed to delete person",
			slog.String("person_id", personID))
		return err
	}

	s.LogInfo(ctx, "Person deleted",
		slog.String("person_id", personID))
	return nil
}

func (s *personService) ensureIdentificationAvailable(ctx context.Context, identification, current string) error {
	_, err := s.personRepo.FindPersonByIdentification(ctx, identification, current)
	switch {
	case err == nil:
		return apperrors.Validation(apperrors.ErrDuplicateIdentification, msgIdentificationInUse)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		s.LogError(ctx, err, "Failed to check identification")
		return err
	}
}
