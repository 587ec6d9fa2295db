package mapping

import (
	"github.com/SscSPs/banking_services/internal/core/domain"
	"github.com/SscSPs/banking_services/internal/models"
)

// ToModelPerson converts a domain Person to a model Person
func ToModelPerson(d domain.Person) models.Person {
	return models.Person{
		PersonID:       d.PersonID,
		Name:           d.Name,
		Gender:         d.Gender,
		Age:            d.Age,
		Identification: d.Identification,
		Address:        d.Address,
		Phone:          d.Phone,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPerson converts a model Person to a domain Person
func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		PersonID:       m.PersonID,
		Name:           m.Name,
		Gender:         m.Gender,
		Age:            m.Age,
		Identification: m.Identification,
		Address:        m.Address,
		Phone:          m.Phone,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID: d.CustomerID,
		PersonID:   d.PersonID,
		Password:   d.PasswordHash,
		Status:     d.Status.Bool(),
		Person:     ToModelPerson(d.Person),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:   m.CustomerID,
		Person:       ToDomainPerson(m.Person),
		PasswordHash: m.Password,
		Status:       domain.StatusFromBool(m.Status),
	}
}
