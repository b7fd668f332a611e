package service

import (
	"context"
	"fmt"
	"time"

	"recruitd/internal/errs"
	"recruitd/internal/model"
	"recruitd/internal/repository"
)

// ApplicationService defines applicant-side operations: competence profiles,
// availability periods and application submission.
type ApplicationService interface {
	// CreateCompetenceProfile records claimed years of experience in a competence.
	CreateCompetenceProfile(ctx context.Context, personID, competenceID int64, years float64) (*model.CompetenceProfile, error)
	// ListCompetenceProfiles returns a person's competence profiles.
	ListCompetenceProfiles(ctx context.Context, personID int64) ([]model.CompetenceProfile, error)
	// CreateAvailability records a period the applicant is available.
	CreateAvailability(ctx context.Context, personID int64, from, to time.Time) (*model.Availability, error)
	// ListAvailability returns a person's availability periods.
	ListAvailability(ctx context.Context, personID int64) ([]model.Availability, error)
	// SubmitApplication creates an application (status unchecked, version 0)
	// from previously created availability periods and competence profiles.
	SubmitApplication(ctx context.Context, personID int64, availabilityIDs, profileIDs []int64) (*model.Application, error)
}

type ApplicationServiceImpl struct {
	apps         repository.ApplicationRepository
	competences  repository.CompetenceRepository
	availability repository.AvailabilityRepository
}

// NewApplicationService constructs ApplicationService.
func NewApplicationService(
	apps repository.ApplicationRepository,
	competences repository.CompetenceRepository,
	availability repository.AvailabilityRepository,
) *ApplicationServiceImpl {
	return &ApplicationServiceImpl{apps: apps, competences: competences, availability: availability}
}

// CreateCompetenceProfile validates input and inserts the profile. The
// referenced competence must exist.
func (s *ApplicationServiceImpl) CreateCompetenceProfile(
	ctx context.Context, personID, competenceID int64, years float64,
) (*model.CompetenceProfile, error) {
	if years < 0 {
		return nil, &errs.InvalidParameterError{Field: "yearsOfExperience", Reason: "must not be negative"}
	}
	if _, err := s.competences.GetCompetence(ctx, competenceID); err != nil {
		return nil, err
	}
	p := &model.CompetenceProfile{PersonID: personID, CompetenceID: competenceID, YearsOfExperience: years}
	id, err := s.competences.CreateProfile(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// ListCompetenceProfiles returns a person's competence profiles.
func (s *ApplicationServiceImpl) ListCompetenceProfiles(ctx context.Context, personID int64) ([]model.CompetenceProfile, error) {
	return s.competences.ListProfiles(ctx, personID)
}

// CreateAvailability validates the period (from must not be after to) and
// inserts it.
func (s *ApplicationServiceImpl) CreateAvailability(
	ctx context.Context, personID int64, from, to time.Time,
) (*model.Availability, error) {
	if from.After(to) {
		return nil, &errs.InvalidParameterError{Field: "fromDate", Reason: "must not be after toDate"}
	}
	id, err := s.availability.CreateAvailability(ctx, personID, from, to)
	if err != nil {
		return nil, err
	}
	return &model.Availability{ID: id, PersonID: personID, FromDate: from, ToDate: to}, nil
}

// ListAvailability returns a person's availability periods.
func (s *ApplicationServiceImpl) ListAvailability(ctx context.Context, personID int64) ([]model.Availability, error) {
	return s.availability.ListAvailability(ctx, personID)
}

// SubmitApplication validates the referenced ids (non-empty, no duplicates)
// and delegates creation to the repository, which verifies ownership.
func (s *ApplicationServiceImpl) SubmitApplication(
	ctx context.Context, personID int64, availabilityIDs, profileIDs []int64,
) (*model.Application, error) {
	if len(availabilityIDs) == 0 {
		return nil, &errs.InvalidParameterError{Field: "availabilityIds", Reason: "at least one availability period is required"}
	}
	if len(profileIDs) == 0 {
		return nil, &errs.InvalidParameterError{Field: "competenceProfileIds", Reason: "at least one competence profile is required"}
	}
	if err := noDuplicates("availabilityIds", availabilityIDs); err != nil {
		return nil, err
	}
	if err := noDuplicates("competenceProfileIds", profileIDs); err != nil {
		return nil, err
	}
	return s.apps.Create(ctx, personID, availabilityIDs, profileIDs)
}

func noDuplicates(field string, ids []int64) error {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return &errs.InvalidParameterError{Field: field, Reason: fmt.Sprintf("contains duplicate id %d", id)}
		}
		seen[id] = struct{}{}
	}
	return nil
}
