package repository

import (
	"context"
	"time"

	"recruitd/internal/model"
)

// CompetenceRepository provides the competence catalog, its translations and
// per-person competence profiles.
type CompetenceRepository interface {
	// ListCompetences returns the full competence catalog.
	ListCompetences(ctx context.Context) ([]model.Competence, error)
	// GetCompetence returns one catalog entry or errs.ErrNotFound.
	GetCompetence(ctx context.Context, id int64) (*model.Competence, error)
	// CreateProfile inserts a competence profile; the competence must exist.
	CreateProfile(ctx context.Context, p *model.CompetenceProfile) (int64, error)
	// ListProfiles returns all competence profiles for a person.
	ListProfiles(ctx context.Context, personID int64) ([]model.CompetenceProfile, error)
	// ListLanguages returns the supported translation languages.
	ListLanguages(ctx context.Context) ([]model.Language, error)
	// GetLanguageByName returns a language by its lowercase name or errs.ErrNotFound.
	GetLanguageByName(ctx context.Context, name string) (*model.Language, error)
	// ListTranslations returns the competence translations for a language.
	ListTranslations(ctx context.Context, languageID int64) ([]model.CompetenceTranslation, error)
}

// AvailabilityRepository provides per-person availability periods.
type AvailabilityRepository interface {
	// CreateAvailability inserts an availability period.
	CreateAvailability(ctx context.Context, personID int64, from, to time.Time) (int64, error)
	// ListAvailability returns all availability periods for a person.
	ListAvailability(ctx context.Context, personID int64) ([]model.Availability, error)
}
