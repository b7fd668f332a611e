package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"recruitd/internal/errs"
	"recruitd/internal/model"
)

// CompetenceRepo implements CompetenceRepository using PostgreSQL.
type CompetenceRepo struct{ db *DB }

// NewCompetenceRepo constructs a competence repository.
func NewCompetenceRepo(db *DB) *CompetenceRepo { return &CompetenceRepo{db: db} }

// ListCompetences returns the full competence catalog.
func (r *CompetenceRepo) ListCompetences(ctx context.Context) ([]model.Competence, error) {
	const q = `SELECT competence_id, name FROM competence ORDER BY competence_id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Competence
	for rows.Next() {
		var c model.Competence
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCompetence returns one catalog entry by id.
func (r *CompetenceRepo) GetCompetence(ctx context.Context, id int64) (*model.Competence, error) {
	const q = `SELECT competence_id, name FROM competence WHERE competence_id=$1`
	var c model.Competence
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// CreateProfile inserts a competence profile for a person.
func (r *CompetenceRepo) CreateProfile(ctx context.Context, p *model.CompetenceProfile) (int64, error) {
	const q = `
INSERT INTO competence_profile (person_id, competence_id, years_of_experience)
VALUES ($1,$2,$3) RETURNING competence_profile_id`
	var id int64
	err := r.db.Pool.QueryRow(ctx, q, p.PersonID, p.CompetenceID, p.YearsOfExperience).Scan(&id)
	if isForeignKeyViolation(err) {
		return 0, errs.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListProfiles returns all competence profiles for a person.
func (r *CompetenceRepo) ListProfiles(ctx context.Context, personID int64) ([]model.CompetenceProfile, error) {
	const q = `
SELECT competence_profile_id, person_id, competence_id, years_of_experience
FROM competence_profile WHERE person_id=$1 ORDER BY competence_profile_id`
	rows, err := r.db.Pool.Query(ctx, q, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CompetenceProfile
	for rows.Next() {
		var p model.CompetenceProfile
		if err := rows.Scan(&p.ID, &p.PersonID, &p.CompetenceID, &p.YearsOfExperience); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListLanguages returns the supported translation languages.
func (r *CompetenceRepo) ListLanguages(ctx context.Context) ([]model.Language, error) {
	const q = `SELECT language_id, name FROM language ORDER BY language_id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Language
	for rows.Next() {
		var l model.Language
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// GetLanguageByName returns a language by its lowercase name.
func (r *CompetenceRepo) GetLanguageByName(ctx context.Context, name string) (*model.Language, error) {
	const q = `SELECT language_id, name FROM language WHERE name=$1`
	var l model.Language
	if err := r.db.Pool.QueryRow(ctx, q, name).Scan(&l.ID, &l.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListTranslations returns the competence translations for a language.
func (r *CompetenceRepo) ListTranslations(ctx context.Context, languageID int64) ([]model.CompetenceTranslation, error) {
	const q = `
SELECT competence_translation_id, competence_id, language_id, translation
FROM competence_translation WHERE language_id=$1 ORDER BY competence_id`
	rows, err := r.db.Pool.Query(ctx, q, languageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CompetenceTranslation
	for rows.Next() {
		var t model.CompetenceTranslation
		if err := rows.Scan(&t.ID, &t.CompetenceID, &t.LanguageID, &t.Translation); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// AvailabilityRepo implements AvailabilityRepository using PostgreSQL.
type AvailabilityRepo struct{ db *DB }

// NewAvailabilityRepo constructs an availability repository.
func NewAvailabilityRepo(db *DB) *AvailabilityRepo { return &AvailabilityRepo{db: db} }

// CreateAvailability inserts an availability period for a person.
func (r *AvailabilityRepo) CreateAvailability(ctx context.Context, personID int64, from, to time.Time) (int64, error) {
	const q = `
INSERT INTO availability (person_id, from_date, to_date)
VALUES ($1,$2,$3) RETURNING availability_id`
	var id int64
	err := r.db.Pool.QueryRow(ctx, q, personID, from, to).Scan(&id)
	if isForeignKeyViolation(err) {
		return 0, errs.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListAvailability returns all availability periods for a person.
func (r *AvailabilityRepo) ListAvailability(ctx context.Context, personID int64) ([]model.Availability, error) {
	const q = `
SELECT availability_id, person_id, from_date, to_date
FROM availability WHERE person_id=$1 ORDER BY availability_id`
	rows, err := r.db.Pool.Query(ctx, q, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Availability
	for rows.Next() {
		var a model.Availability
		if err := rows.Scan(&a.ID, &a.PersonID, &a.FromDate, &a.ToDate); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
