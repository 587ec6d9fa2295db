package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/dto"
	"github.com/SscSPs/banking_services/internal/utils"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
)

const (
	msgCustomerNotFound         = "Customer not found"
	msgIdentificationRegistered = "The identification is already registered"
)

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	personRepo   portsrepo.PersonReader
}

// NewCustomerService creates a customer service. Persons are consulted to keep identifications unique.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, personRepo portsrepo.PersonReader) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo: customerRepo,
		personRepo:   personRepo,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if err := s.ensureIdentificationAvailable(ctx, req.Identification, ""); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash customer password")
		return nil, err
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Person: domain.Person{
			PersonID:       uuid.NewString(),
			Name:           strings.ToUpper(req.Name),
			Gender:         req.Gender,
			Age:            req.Age,
			Identification: req.Identification,
			Address:        req.Address,
			Phone:          req.Phone,
			AuditFields:    audit,
		},
		PasswordHash: hash,
		Status:       domain.StatusActive,
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Validation(apperrors.ErrDuplicateIdentification, msgIdentificationRegistered)
		}
		s.LogError(ctx, err, "Failed to save customer",
			slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created successfully",
		slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(msgCustomerNotFound)
		}
		s.LogError(ctx, err, "Failed to find customer by ID",
			slog.String("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, page pagination.Request) (pagination.Page[domain.Customer], error) {
	customers, err := s.customerRepo.ListCustomers(ctx, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return pagination.Page[domain.Customer]{}, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer applies every non-empty field of req.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if v, ok := nonEmpty(req.Identification); ok && v != customer.Identification {
		if err := s.ensureIdentificationAvailable(ctx, v, customer.Identification); err != nil {
			return nil, err
		}
		customer.Identification = v
	}
	if v, ok := nonEmpty(req.Name); ok {
		customer.Name = strings.ToUpper(v)
	}
	if v, ok := nonEmpty(req.Gender); ok {
		customer.Gender = v
	}
	if req.Age != nil {
		customer.Age = *req.Age
	}
	if v, ok := nonEmpty(req.Address); ok {
		customer.Address = v
	}
	if v, ok := nonEmpty(req.Phone); ok {
		customer.Phone = v
	}
	if v, ok := nonEmpty(req.Password); ok {
		hash, err := utils.HashPassword(v)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash customer password")
			return nil, err
		}
		customer.PasswordHash = hash
	}

	if err := s.save(ctx, customer); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Customer updated successfully",
		slog.String("customer_id", customerID))
	return customer, nil
}

// DeactivateCustomer keeps the row so accounts and reports can still resolve the owner.
func (s *customerService) DeactivateCustomer(ctx context.Context, customerID string) error {
	customer, err := s.GetCustomerByID(ctx, customerID)
	if err != nil {
		return err
	}

	customer.Status = domain.StatusInactive
	if err := s.save(ctx, customer); err != nil {
		return err
	}

	s.LogInfo(ctx, "Customer deactivated successfully",
		slog.String("customer_id", customerID))
	return nil
}

func (s *customerService) save(ctx context.Context, customer *domain.Customer) error {
	customer.LastUpdatedAt = time.Now().UTC()

	err := s.customerRepo.UpdateCustomer(ctx, *customer)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrDuplicate):
		return apperrors.Validation(apperrors.ErrDuplicateIdentification, msgIdentificationRegistered)
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NotFound(msgCustomerNotFound)
	default:
		s.LogError(ctx, err, "Failed to update customer",
			slog.String("customer_id", customer.CustomerID))
		return err
	}
}

func (s *customerService) ensureIdentificationAvailable(ctx context.Context, identification, current string) error {
	_, err := s.personRepo.FindPersonByIdentification(ctx, identification, current)
	switch {
	case err == nil:
		return apperrors.Validation(apperrors.ErrDuplicateIdentification, msgIdentificationRegistered)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		s.LogError(ctx, err, "Failed to check identification")
		return err
	}
}

func nonEmpty(v *string) (string, bool) {
	if v == nil || *v == "" {
		return "", false
	}
	return *v, true
}
