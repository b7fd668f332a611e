package service

import (
	"context"
	"strings"

	"recruitd/internal/errs"
	"recruitd/internal/model"
	"recruitd/internal/repository"
)

// CompetenceService exposes the public competence catalog and its per-language
// translations.
type CompetenceService interface {
	// ListCompetences returns the full catalog.
	ListCompetences(ctx context.Context) ([]model.Competence, error)
	// GetCompetence returns one catalog entry or errs.ErrNotFound.
	GetCompetence(ctx context.Context, id int64) (*model.Competence, error)
	// ListLanguages returns the supported translation languages.
	ListLanguages(ctx context.Context) ([]model.Language, error)
	// GetCompetenceTranslations returns the catalog translated into the named
	// language, matched case-insensitively. An unknown language and a language
	// without translations both fail errs.ErrNotFound.
	GetCompetenceTranslations(ctx context.Context, language string) ([]model.CompetenceTranslation, error)
}

type CompetenceServiceImpl struct {
	competences repository.CompetenceRepository
}

// NewCompetenceService constructs CompetenceService.
func NewCompetenceService(competences repository.CompetenceRepository) *CompetenceServiceImpl {
	return &CompetenceServiceImpl{competences: competences}
}

func (s *CompetenceServiceImpl) ListCompetences(ctx context.Context) ([]model.Competence, error) {
	return s.competences.ListCompetences(ctx)
}

func (s *CompetenceServiceImpl) GetCompetence(ctx context.Context, id int64) (*model.Competence, error) {
	return s.competences.GetCompetence(ctx, id)
}

func (s *CompetenceServiceImpl) ListLanguages(ctx context.Context) ([]model.Language, error) {
	return s.competences.ListLanguages(ctx)
}

// GetCompetenceTranslations resolves the language by its lowercase name, then
// loads its translations. Language names are stored lowercase.
func (s *CompetenceServiceImpl) GetCompetenceTranslations(ctx context.Context, language string) ([]model.CompetenceTranslation, error) {
	if language == "" {
		return nil, &errs.InvalidParameterError{Field: "language", Reason: "a value is required"}
	}
	lang, err := s.competences.GetLanguageByName(ctx, strings.ToLower(language))
	if err != nil {
		return nil, err
	}
	translations, err := s.competences.ListTranslations(ctx, lang.ID)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, errs.ErrNotFound
	}
	return translations, nil
}
