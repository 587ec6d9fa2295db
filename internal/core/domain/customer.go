package domain

// Person holds the personal data shared by every customer.
type Person struct {
	PersonID       string `json:"personId"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	Identification string `json:"identification"` // 10 digits, unique among persons
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	AuditFields
}

// Customer is a person that holds a banking relationship.
type Customer struct {
	CustomerID   string `json:"customerId"`
	Person              // Embedded personal data
	PasswordHash string `json:"-"` // bcrypt, never serialized
	Status       Status `json:"status"`
}

// IsActive reports whether the customer may own new accounts.
func (c Customer) IsActive() bool {
	return c.Status.IsActive()
}
