package service

import (
	"context"

	"recruitd/internal/model"
	"recruitd/internal/repository"
)

// ReviewService defines recruiter-side operations over applications, including
// the version-guarded status transition.
type ReviewService interface {
	// GetApplications returns every application.
	GetApplications(ctx context.Context) ([]model.Application, error)
	// GetApplicationsByStatus returns applications with the given status.
	GetApplicationsByStatus(ctx context.Context, status model.ApplicationStatus) ([]model.Application, error)
	// GetApplicationByID returns a single application or errs.ErrNotFound.
	GetApplicationByID(ctx context.Context, id int64) (*model.Application, error)
	// SetApplicationStatus transitions an application's status if the stored
	// version equals expectedVersion.
	SetApplicationStatus(ctx context.Context, id int64, status string, expectedVersion int64) (*model.Application, error)
}

type ReviewServiceImpl struct {
	apps repository.ApplicationRepository
}

// NewReviewService constructs ReviewService.
func NewReviewService(apps repository.ApplicationRepository) *ReviewServiceImpl {
	return &ReviewServiceImpl{apps: apps}
}

// GetApplications returns every application.
func (s *ReviewServiceImpl) GetApplications(ctx context.Context) ([]model.Application, error) {
	return s.apps.GetAll(ctx)
}

// GetApplicationsByStatus returns applications with the given status.
func (s *ReviewServiceImpl) GetApplicationsByStatus(ctx context.Context, status model.ApplicationStatus) ([]model.Application, error) {
	return s.apps.GetByStatus(ctx, status)
}

// GetApplicationByID returns a single application by id.
func (s *ReviewServiceImpl) GetApplicationByID(ctx context.Context, id int64) (*model.Application, error) {
	return s.apps.GetByID(ctx, id)
}

// SetApplicationStatus validates the requested status and delegates to the
// versioned update. The status value is parsed case-insensitively; an
// unrecognized value fails errs.ErrInvalidStatus without touching the store.
// Any source status may transition to any target; the only gate is version
// equality. A mismatch surfaces *errs.StaleVersionError with the stored
// version so the caller can re-fetch and re-decide.
func (s *ReviewServiceImpl) SetApplicationStatus(
	ctx context.Context, id int64, status string, expectedVersion int64,
) (*model.Application, error) {
	parsed, err := model.ParseApplicationStatus(status)
	if err != nil {
		return nil, err
	}
	return s.apps.UpdateStatus(ctx, id, expectedVersion, parsed)
}
