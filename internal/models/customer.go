package models

// Person is a row of the persons table.
type Person struct {
	PersonID       string `db:"person_id"`
	Name           string `db:"name"`
	Gender         string `db:"gender"`
	Age            int    `db:"age"`
	Identification string `db:"identification"` // UNIQUE
	Address        string `db:"address"`
	Phone          string `db:"phone"`
	AuditFields
}

// Customer is a row of the customers table joined with its person.
type Customer struct {
	CustomerID string `db:"customer_id"`
	PersonID   string `db:"person_id"` // FK -> persons.person_id
	Password   string `db:"password"`  // bcrypt hash
	Status     bool   `db:"status"`
	Person
}
