package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_services/internal/core/ports/repositories"
	"github.com/SscSPs/banking_services/internal/models"
	"github.com/SscSPs/banking_services/internal/utils/mapping"
	"github.com/SscSPs/banking_services/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerSelect = `
	SELECT c.customer_id, c.password, c.status,
	       p.person_id, p.name, p.gender, p.age, p.identification, p.address, p.phone, p.created_at, p.last_updated_at
	FROM customers c
	JOIN persons p ON p.person_id = c.person_id
`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row rowScanner) (domain.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Password,
		&m.Status,
		&m.Person.PersonID,
		&m.Person.Name,
		&m.Person.Gender,
		&m.Person.Age,
		&m.Person.Identification,
		&m.Person.Address,
		&m.Person.Phone,
		&m.Person.CreatedAt,
		&m.Person.LastUpdatedAt,
	)
	if err != nil {
		return domain.Customer{}, err
	}
	m.PersonID = m.Person.PersonID
	return mapping.ToDomainCustomer(m), nil
}

// SaveCustomer inserts the person and the customer rows in one transaction.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if err := insertPerson(ctx, tx, customer.Person); err != nil {
		return err
	}

	m := mapping.ToModelCustomer(customer)
	query := `INSERT INTO customers (customer_id, person_id, password, status) VALUES ($1, $2, $3, $4);`
	if _, err := tx.Exec(ctx, query, m.CustomerID, m.PersonID, m.Password, m.Status); err != nil {
		return translateError(err, fmt.Sprintf("failed to save customer %s", m.CustomerID))
	}

	return r.Commit(ctx, tx)
}

// UpdateCustomer updates the person and the customer rows in one transaction.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := updatePerson(ctx, tx, customer.Person); err != nil {
		return err
	}

	m := mapping.ToModelCustomer(customer)
	query := `UPDATE customers SET password = $2, status = $3 WHERE customer_id = $1;`
	cmdTag, err := tx.Exec(ctx, query, m.CustomerID, m.Password, m.Status)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update customer %s", m.CustomerID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindCustomerByID retrieves a customer with its person data.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := scanCustomer(r.Pool.QueryRow(ctx, customerSelect+` WHERE c.customer_id = $1;`, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, fmt.Sprintf("failed to find customer %s", customerID))
	}
	return &customer, nil
}

// ListCustomers retrieves a page of customers ordered by creation time.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, page pagination.Request) (pagination.Page[domain.Customer], error) {
	total, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM customers;`)
	if err != nil {
		return pagination.Page[domain.Customer]{}, translateError(err, "failed to count customers")
	}

	rows, err := r.Pool.Query(ctx, customerSelect+` ORDER BY p.created_at, c.customer_id LIMIT $1 OFFSET $2;`, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[domain.Customer]{}, translateError(err, "failed to list customers")
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0, page.Limit())
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return pagination.Page[domain.Customer]{}, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[domain.Customer]{}, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return pagination.NewPage(customers, page, total), nil
}
