// Package model defines domain entities used by services and repositories.
package model

import (
	"strings"
	"time"

	"recruitd/internal/errs"
)

// Capability is a named permission gating a class of routes.
type Capability string

// The two capability classes of the system. A role name doubles as the
// capability it grants.
const (
	CapabilityApplicant Capability = "applicant"
	CapabilityRecruiter Capability = "recruiter"
)

// Role is a named role stored per person.
type Role struct {
	ID   int64
	Name string
}

// Person is an account in the system and, once resolved for a request, the
// authenticated principal. The capability set is derived from the role row on
// every resolution, never from token claims.
type Person struct {
	ID       int64
	Name     string
	Surname  string
	Pnr      string
	Email    string
	Username string
	PwdHash  []byte
	Salt     []byte
	Role     Role
}

// Capabilities returns the derived capability set for this person.
func (p *Person) Capabilities() []Capability {
	if p.Role.Name == "" {
		return nil
	}
	return []Capability{Capability(p.Role.Name)}
}

// HasCapability reports whether this person's role grants the capability.
func (p *Person) HasCapability(c Capability) bool {
	return Capability(p.Role.Name) == c
}

// ApplicationStatus is the review status of an application.
type ApplicationStatus string

// The three recognized statuses. All three are mutually reachable; the only
// gate on a transition is version equality.
const (
	StatusUnchecked ApplicationStatus = "unchecked"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusDenied    ApplicationStatus = "denied"
)

// ParseApplicationStatus parses a status value case-insensitively.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(strings.ToLower(s)) {
	case StatusUnchecked:
		return StatusUnchecked, nil
	case StatusAccepted:
		return StatusAccepted, nil
	case StatusDenied:
		return StatusDenied, nil
	default:
		return "", errs.ErrInvalidStatus
	}
}

// Application is a submitted job application with a version counter for
// optimistic concurrency. VersionNumber increases by exactly 1 on every
// successful status update and never otherwise.
type Application struct {
	ID              int64
	PersonID        int64
	Status          ApplicationStatus
	VersionNumber   int64
	ApplicationDate time.Time
}

// EntityVersion implements the versioned-entity contract used by the
// concurrency guard.
func (a Application) EntityVersion() int64 { return a.VersionNumber }

// Availability is a period during which an applicant is available to work.
type Availability struct {
	ID       int64
	PersonID int64
	FromDate time.Time
	ToDate   time.Time
}

// Competence is a catalog entry applicants can claim experience in.
type Competence struct {
	ID   int64
	Name string
}

// Language is a supported catalog translation language.
type Language struct {
	ID   int64
	Name string
}

// CompetenceTranslation is a competence name localized into one language.
type CompetenceTranslation struct {
	ID           int64
	CompetenceID int64
	LanguageID   int64
	Translation  string
}

// CompetenceProfile records an applicant's claimed years of experience in a
// competence.
type CompetenceProfile struct {
	ID                int64
	PersonID          int64
	CompetenceID      int64
	YearsOfExperience float64
}

// Tokens collects an issued access token and its expiry (for diagnostics).
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time
}
