package dto

import (
	"time"

	"github.com/SscSPs/banking_services/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name           string `json:"name" binding:"required,max=255,personname" example:"JOSE LEMA"`
	Gender         string `json:"gender" binding:"required,min=1,max=255,personname" example:"Male"`
	Age            int    `json:"age" binding:"min=0,max=255" example:"35"`
	Identification string `json:"identification" binding:"required,len=10,number" example:"1712345678"`
	Address        string `json:"address" binding:"required,min=1,max=255,address" example:"Otavalo sn y principal"`
	Phone          string `json:"phone" binding:"required,len=10,number" example:"0982548785"`
	Password       string `json:"password" binding:"required,password" example:"Secret@123"`
}

// UpdateCustomerRequest defines a partial update. Omitted fields keep their value.
type UpdateCustomerRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=255,personname"`
	Gender         *string `json:"gender" binding:"omitempty,min=1,max=255,personname"`
	Age            *int    `json:"age" binding:"omitempty,min=0,max=255"`
	Identification *string `json:"identification" binding:"omitempty,len=10,number"`
	Address        *string `json:"address" binding:"omitempty,min=1,max=255,address"`
	Phone          *string `json:"phone" binding:"omitempty,len=10,number"`
	Password       *string `json:"password" binding:"omitempty,password"`
}

// CustomerResponse defines the data returned for a customer. It never carries the password.
type CustomerResponse struct {
	CustomerID     string        `json:"customerId"`
	PersonID       string        `json:"personId,omitempty"`
	Name           string        `json:"name"`
	Gender         string        `json:"gender,omitempty"`
	Age            int           `json:"age,omitempty"`
	Identification string        `json:"identification,omitempty"`
	Address        string        `json:"address,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Status         domain.Status `json:"status,omitempty"`
	CreatedAt      *time.Time    `json:"createdAt,omitempty"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c domain.Customer) CustomerResponse {
	resp := CustomerResponse{
		CustomerID:     c.CustomerID,
		PersonID:       c.PersonID,
		Name:           c.Name,
		Gender:         c.Gender,
		Age:            c.Age,
		Identification: c.Identification,
		Address:        c.Address,
		Phone:          c.Phone,
		Status:         c.Status,
	}
	if !c.CreatedAt.IsZero() {
		createdAt := c.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// ToDomainCustomer converts a CustomerResponse received from the customer service
// back into the domain view used by the account service.
func ToDomainCustomer(r CustomerResponse) domain.Customer {
	c := domain.Customer{
		CustomerID: r.CustomerID,
		Person: domain.Person{
			PersonID:       r.PersonID,
			Name:           r.Name,
			Gender:         r.Gender,
			Age:            r.Age,
			Identification: r.Identification,
			Address:        r.Address,
			Phone:          r.Phone,
		},
		Status: r.Status,
	}
	if r.CreatedAt != nil {
		c.CreatedAt = *r.CreatedAt
	}
	return c
}
