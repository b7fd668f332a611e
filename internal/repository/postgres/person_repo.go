package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"recruitd/internal/errs"
	"recruitd/internal/model"
)

// PersonRepo implements PersonRepository using PostgreSQL.
type PersonRepo struct{ db *DB }

// NewPersonRepo constructs a person repository.
func NewPersonRepo(db *DB) *PersonRepo { return &PersonRepo{db: db} }

// Create inserts a new person row, resolving the role by name.
func (r *PersonRepo) Create(ctx context.Context, p *model.Person) (int64, error) {
	const q = `
INSERT INTO person (name, surname, pnr, email, username, pwd_hash, salt, role_id)
VALUES ($1,$2,$3,$4,$5,$6,$7,(SELECT role_id FROM role WHERE name=$8))
RETURNING person_id`
	var id int64
	err := r.db.Pool.QueryRow(ctx, q,
		p.Name, p.Surname, p.Pnr, p.Email, p.Username, p.PwdHash, p.Salt, p.Role.Name,
	).Scan(&id)
	if isUniqueViolation(err) {
		return 0, errs.ErrAlreadyExists
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID selects a person, role included, by id.
func (r *PersonRepo) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	const q = `
SELECT p.person_id, p.name, p.surname, p.pnr, p.email, p.username, p.pwd_hash, p.salt, r.role_id, r.name
FROM person p JOIN role r ON r.role_id = p.role_id
WHERE p.person_id=$1`
	return r.scanPerson(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByUsername selects a person, role included, by username. This is the
// principal lookup the authentication gate calls on every request.
func (r *PersonRepo) GetByUsername(ctx context.Context, username string) (*model.Person, error) {
	const q = `
SELECT p.person_id, p.name, p.surname, p.pnr, p.email, p.username, p.pwd_hash, p.salt, r.role_id, r.name
FROM person p JOIN role r ON r.role_id = p.role_id
WHERE p.username=$1`
	return r.scanPerson(r.db.Pool.QueryRow(ctx, q, username))
}

// FindByName returns people whose first name matches exactly.
func (r *PersonRepo) FindByName(ctx context.Context, name string) ([]model.Person, error) {
	const q = `
SELECT p.person_id, p.name, p.surname, p.pnr, p.email, p.username, p.pwd_hash, p.salt, r.role_id, r.name
FROM person p JOIN role r ON r.role_id = p.role_id
WHERE p.name=$1 ORDER BY p.person_id`
	rows, err := r.db.Pool.Query(ctx, q, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Person
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Surname, &p.Pnr, &p.Email, &p.Username,
			&p.PwdHash, &p.Salt, &p.Role.ID, &p.Role.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PersonRepo) scanPerson(row pgx.Row) (*model.Person, error) {
	var p model.Person
	if err := row.Scan(&p.ID, &p.Name, &p.Surname, &p.Pnr, &p.Email, &p.Username,
		&p.PwdHash, &p.Salt, &p.Role.ID, &p.Role.Name); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
