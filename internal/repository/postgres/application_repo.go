package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"recruitd/internal/errs"
	"recruitd/internal/model"
)

// ApplicationRepo implements ApplicationRepository using PostgreSQL. Status
// updates go through the versioned guard; reads are plain queries.
type ApplicationRepo struct {
	db    *DB
	guard *Guard[model.Application]
}

// NewApplicationRepo constructs an application repository.
func NewApplicationRepo(db *DB) *ApplicationRepo {
	return &ApplicationRepo{db: db, guard: NewGuard[model.Application](db, applicationRows{})}
}

// applicationRows provides the guard's SQL for the application table.
type applicationRows struct{}

func (applicationRows) SelectForUpdate(ctx context.Context, tx pgx.Tx, id int64) (model.Application, error) {
	const q = `
SELECT application_id, person_id, application_status, application_version_number, application_date
FROM application WHERE application_id=$1 FOR UPDATE`
	var a model.Application
	row := tx.QueryRow(ctx, q, id)
	if err := row.Scan(&a.ID, &a.PersonID, &a.Status, &a.VersionNumber, &a.ApplicationDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Application{}, errs.ErrNotFound
		}
		return model.Application{}, err
	}
	return a, nil
}

func (applicationRows) Store(ctx context.Context, tx pgx.Tx, id int64, a model.Application, newVersion int64) error {
	const q = `
UPDATE application SET application_status=$2, application_version_number=$3 WHERE application_id=$1`
	_, err := tx.Exec(ctx, q, id, a.Status, newVersion)
	return err
}

// UpdateStatus sets the status with a version compare-and-increment.
func (r *ApplicationRepo) UpdateStatus(
	ctx context.Context, id, expectedVersion int64, status model.ApplicationStatus,
) (*model.Application, error) {
	app, newVer, err := r.guard.AttemptUpdate(ctx, id, expectedVersion, func(a model.Application) model.Application {
		a.Status = status
		return a
	})
	if err != nil {
		return nil, err
	}
	app.VersionNumber = newVer
	return &app, nil
}

// Create inserts an application with status unchecked and version 0 and links
// the referenced availability periods and competence profiles, verifying that
// each belongs to the applicant.
func (r *ApplicationRepo) Create(
	ctx context.Context, personID int64, availabilityIDs, profileIDs []int64,
) (app *model.Application, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = cerr
		}
	}()

	now := time.Now()
	const ins = `
INSERT INTO application (person_id, application_status, application_version_number, application_date)
VALUES ($1,$2,0,$3) RETURNING application_id`
	a := model.Application{
		PersonID:        personID,
		Status:          model.StatusUnchecked,
		VersionNumber:   0,
		ApplicationDate: now,
	}
	if err = tx.QueryRow(ctx, ins, personID, model.StatusUnchecked, now).Scan(&a.ID); err != nil {
		return nil, err
	}

	const selAvail = `SELECT person_id FROM availability WHERE availability_id=$1`
	const insAvail = `INSERT INTO application_availability_periods (application_id, availability_id) VALUES ($1,$2)`
	for _, id := range availabilityIDs {
		var owner int64
		if err = tx.QueryRow(ctx, selAvail, id).Scan(&owner); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				err = errs.ErrNotFound
			}
			return nil, err
		}
		if owner != personID {
			err = errs.ErrNotFound
			return nil, err
		}
		if _, err = tx.Exec(ctx, insAvail, a.ID, id); err != nil {
			return nil, err
		}
	}

	const selProf = `SELECT person_id FROM competence_profile WHERE competence_profile_id=$1`
	const insProf = `INSERT INTO application_competence_profile (application_id, competence_profile_id) VALUES ($1,$2)`
	for _, id := range profileIDs {
		var owner int64
		if err = tx.QueryRow(ctx, selProf, id).Scan(&owner); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				err = errs.ErrNotFound
			}
			return nil, err
		}
		if owner != personID {
			err = errs.ErrNotFound
			return nil, err
		}
		if _, err = tx.Exec(ctx, insProf, a.ID, id); err != nil {
			return nil, err
		}
	}

	return &a, nil
}

// GetAll returns every application.
func (r *ApplicationRepo) GetAll(ctx context.Context) ([]model.Application, error) {
	const q = `
SELECT application_id, person_id, application_status, application_version_number, application_date
FROM application ORDER BY application_id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

// GetByStatus returns applications with the given status.
func (r *ApplicationRepo) GetByStatus(ctx context.Context, status model.ApplicationStatus) ([]model.Application, error) {
	const q = `
SELECT application_id, person_id, application_status, application_version_number, application_date
FROM application WHERE application_status=$1 ORDER BY application_id`
	rows, err := r.db.Pool.Query(ctx, q, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

// GetByID returns a single application by id.
func (r *ApplicationRepo) GetByID(ctx context.Context, id int64) (*model.Application, error) {
	const q = `
SELECT application_id, person_id, application_status, application_version_number, application_date
FROM application WHERE application_id=$1`
	var a model.Application
	row := r.db.Pool.QueryRow(ctx, q, id)
	if err := row.Scan(&a.ID, &a.PersonID, &a.Status, &a.VersionNumber, &a.ApplicationDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func scanApplications(rows pgx.Rows) ([]model.Application, error) {
	var out []model.Application
	for rows.Next() {
		var a model.Application
		if err := rows.Scan(&a.ID, &a.PersonID, &a.Status, &a.VersionNumber, &a.ApplicationDate); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
