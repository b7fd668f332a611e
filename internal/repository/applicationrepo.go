package repository

import (
	"context"

	"recruitd/internal/model"
)

// ApplicationRepository provides versioned access to applications. UpdateStatus
// is the sole mutation path after submission and is atomic: version and status
// change together or neither changes.
type ApplicationRepository interface {
	// Create inserts an application with status unchecked and version 0,
	// linking the given availability periods and competence profiles. All
	// referenced rows must belong to personID.
	Create(ctx context.Context, personID int64, availabilityIDs, profileIDs []int64) (*model.Application, error)

	// GetAll returns every application.
	GetAll(ctx context.Context) ([]model.Application, error)

	// GetByStatus returns applications with the given status.
	GetByStatus(ctx context.Context, status model.ApplicationStatus) ([]model.Application, error)

	// GetByID returns a single application or errs.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.Application, error)

	// UpdateStatus sets the status if the stored version equals
	// expectedVersion, incrementing the version by exactly 1. A mismatch
	// yields *errs.StaleVersionError carrying the stored version; nothing is
	// written. An absent id yields errs.ErrNotFound.
	UpdateStatus(ctx context.Context, id, expectedVersion int64, status model.ApplicationStatus) (*model.Application, error)
}
