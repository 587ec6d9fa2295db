package dto

import "github.com/SscSPs/banking_services/internal/core/domain"

// PersonRequest defines the data of a person for both create and full update.
type PersonRequest struct {
	Name           string `json:"name" binding:"required,max=255,personname"`
	Gender         string `json:"gender" binding:"required,min=1,max=255,personname"`
	Age            int    `json:"age" binding:"min=0,max=255"`
	Identification string `json:"identification" binding:"required,len=10,number"`
	Address        string `json:"address" binding:"required,min=1,max=255,address"`
	Phone          string `json:"phone" binding:"required,len=10,number"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	PersonID       string `json:"personId"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	Identification string `json:"identification"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO
func ToPersonResponse(p domain.Person) PersonResponse {
	return PersonResponse{
		PersonID:       p.PersonID,
		Name:           p.Name,
		Gender:         p.Gender,
		Age:            p.Age,
		Identification: p.Identification,
		Address:        p.Address,
		Phone:          p.Phone,
	}
}
