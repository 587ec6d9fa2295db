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

const personColumns = `person_id, name, gender, age, identification, address, phone, created_at, last_updated_at`

type PgxPersonRepository struct {
	BaseRepository
}

func newPgxPersonRepository(pool *pgxpool.Pool) portsrepo.PersonRepositoryFacade {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

func scanPerson(row rowScanner) (domain.Person, error) {
	var m models.Person
	err := row.Scan(
		&m.PersonID,
		&m.Name,
		&m.Gender,
		&m.Age,
		&m.Identification,
		&m.Address,
		&m.Phone,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return domain.Person{}, err
	}
	return mapping.ToDomainPerson(m), nil
}

func insertPerson(ctx context.Context, q querier, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	query := `
		INSERT INTO persons (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := q.Exec(ctx, query,
		m.PersonID, m.Name, m.Gender, m.Age, m.Identification, m.Address, m.Phone, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to save person %s", m.PersonID))
	}
	return nil
}

func updatePerson(ctx context.Context, q querier, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	query := `
		UPDATE persons
		SET name = $2, gender = $3, age = $4, identification = $5, address = $6, phone = $7, last_updated_at = $8
		WHERE person_id = $1;
	`
	cmdTag, err := q.Exec(ctx, query,
		m.PersonID, m.Name, m.Gender, m.Age, m.Identification, m.Address, m.Phone, m.LastUpdatedAt,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update person %s", m.PersonID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPersonRepository) findPerson(ctx context.Context, query string, args ...any) (*domain.Person, error) {
	person, err := scanPerson(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, "failed to find person")
	}
	return &person, nil
}

// SavePerson inserts a new person.
func (r *PgxPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	return insertPerson(ctx, r.Pool, person)
}

// UpdatePerson overwrites a person's data.
func (r *PgxPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	return updatePerson(ctx, r.Pool, person)
}

// DeletePerson removes a person. A person still referenced by a customer cannot be removed.
func (r *PgxPersonRepository) DeletePerson(ctx context.Context, personID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM persons WHERE person_id = $1;`, personID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("person %s is referenced by a customer: %w", personID, apperrors.ErrPersonInUse)
		}
		return translateError(err, fmt.Sprintf("failed to delete person %s", personID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPersonByID retrieves a person by id.
func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	return r.findPerson(ctx, `SELECT `+personColumns+` FROM persons WHERE person_id = $1;`, personID)
}

// FindPersonByIdentification retrieves the person holding identification, skipping excludeIdentification.
func (r *PgxPersonRepository) FindPersonByIdentification(ctx context.Context, identification string, excludeIdentification string) (*domain.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE identification = $1
		  AND ($2::text = '' OR identification <> $2::text)
		LIMIT 1;
	`
	return r.findPerson(ctx, query, identification, excludeIdentification)
}

// ListPersons retrieves a page of persons ordered by creation time.
func (r *PgxPersonRepository) ListPersons(ctx context.Context, page pagination.Request) (pagination.Page[domain.Person], error) {
	total, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM persons;`)
	if err != nil {
		return pagination.Page[domain.Person]{}, translateError(err, "failed to count persons")
	}

	query := `SELECT ` + personColumns + ` FROM persons ORDER BY created_at, person_id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[domain.Person]{}, translateError(err, "failed to list persons")
	}
	defer rows.Close()

	persons := make([]domain.Person, 0, page.Limit())
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return pagination.Page[domain.Person]{}, fmt.Errorf("failed to scan person row: %w", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[domain.Person]{}, fmt.Errorf("error iterating person rows: %w", err)
	}
	return pagination.NewPage(persons, page, total), nil
}
