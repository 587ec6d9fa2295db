package domain

import "github.com/SscSPs/banking_services/internal/utils/pagination"

// UnavailableCustomerName is the name carried by the placeholder customer of a
// report whose customer profile could not be fetched.
const UnavailableCustomerName = "Customer unavailable"

// Report joins a customer with a page of its transactions in a date range.
type Report struct {
	Customer     Customer                     `json:"customer"`
	Transactions pagination.Page[Transaction] `json:"transactions"`
}

// PlaceholderCustomer returns the customer used in a report when the real profile is unavailable.
func PlaceholderCustomer(customerID string) Customer {
	return Customer{
		CustomerID: customerID,
		Person:     Person{Name: UnavailableCustomerName},
	}
}
