// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"recruitd/internal/model"
)

// PersonRepository provides access to accounts and roles. GetByUsername is the
// principal lookup used by the authentication gate on every request.
type PersonRepository interface {
	// Create inserts a new person with the given role.
	Create(ctx context.Context, p *model.Person) (int64, error)
	// GetByID loads a person by id.
	GetByID(ctx context.Context, id int64) (*model.Person, error)
	// GetByUsername loads a person, role included, by username.
	GetByUsername(ctx context.Context, username string) (*model.Person, error)
	// FindByName returns people whose first name matches exactly.
	FindByName(ctx context.Context, name string) ([]model.Person, error)
}
