package service

import (
	"context"

	"recruitd/internal/errs"
	"recruitd/internal/model"
	"recruitd/internal/repository"
)

// PersonService defines recruiter-side people queries.
type PersonService interface {
	// FindByName returns people whose first name matches exactly.
	FindByName(ctx context.Context, name string) ([]model.Person, error)
}

type PersonServiceImpl struct {
	persons repository.PersonRepository
}

// NewPersonService constructs PersonService.
func NewPersonService(persons repository.PersonRepository) *PersonServiceImpl {
	return &PersonServiceImpl{persons: persons}
}

// FindByName returns people whose first name matches exactly.
func (s *PersonServiceImpl) FindByName(ctx context.Context, name string) ([]model.Person, error) {
	if name == "" {
		return nil, &errs.InvalidParameterError{Field: "name", Reason: "a value is required"}
	}
	return s.persons.FindByName(ctx, name)
}
