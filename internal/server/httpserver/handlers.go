// Package httpserver exposes the recruitment REST API and its middleware
// pipeline: request id, logging, recovery, metrics, authentication gate and
// authorization policy in front of every handler.
package httpserver

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"recruitd/internal/errs"
	"recruitd/internal/model"
	"recruitd/internal/service"
)

// Handlers wires services into HTTP handlers.
type Handlers struct {
	auth         service.AuthService
	review       service.ReviewService
	applications service.ApplicationService
	persons      service.PersonService
	competences  service.CompetenceService
	log          *zap.Logger
}

// NewHandlers constructs the handler set with injected services.
func NewHandlers(
	auth service.AuthService,
	review service.ReviewService,
	applications service.ApplicationService,
	persons service.PersonService,
	competences service.CompetenceService,
	log *zap.Logger,
) *Handlers {
	return &Handlers{
		auth:         auth,
		review:       review,
		applications: applications,
		persons:      persons,
		competences:  competences,
		log:          log,
	}
}

const dateFormat = "2006-01-02"

type applicationJSON struct {
	ApplicationID   int64  `json:"applicationId"`
	PersonID        int64  `json:"personId"`
	Status          string `json:"status"`
	VersionNumber   int64  `json:"versionNumber"`
	ApplicationDate string `json:"applicationDate"`
}

func toApplicationJSON(a model.Application) applicationJSON {
	return applicationJSON{
		ApplicationID:   a.ID,
		PersonID:        a.PersonID,
		Status:          string(a.Status),
		VersionNumber:   a.VersionNumber,
		ApplicationDate: a.ApplicationDate.Format(dateFormat),
	}
}

func toApplicationListJSON(apps []model.Application) []applicationJSON {
	out := make([]applicationJSON, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationJSON(a))
	}
	return out
}

type personJSON struct {
	PersonID int64  `json:"personId"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Pnr      string `json:"pnr"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toPersonJSON(p model.Person) personJSON {
	return personJSON{
		PersonID: p.ID,
		Name:     p.Name,
		Surname:  p.Surname,
		Pnr:      p.Pnr,
		Email:    p.Email,
		Username: p.Username,
		Role:     p.Role.Name,
	}
}

// parseIntField parses a required integer request field, failing with an error
// that names the field and the expected format.
func parseIntField(field, raw string) (int64, error) {
	if raw == "" {
		return 0, &errs.InvalidParameterError{Field: field, Reason: "a value is required"}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &errs.InvalidParameterError{
			Field:  field,
			Reason: fmt.Sprintf("provided value (%s) could not be parsed as a valid integer", raw),
		}
	}
	return v, nil
}

// parseFloatField parses a required decimal request field.
func parseFloatField(field, raw string) (float64, error) {
	if raw == "" {
		return 0, &errs.InvalidParameterError{Field: field, Reason: "a value is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &errs.InvalidParameterError{
			Field:  field,
			Reason: fmt.Sprintf("provided value (%s) could not be parsed as a valid number", raw),
		}
	}
	return v, nil
}

// parseDateField parses a required yyyy-mm-dd request field.
func parseDateField(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, &errs.InvalidParameterError{Field: field, Reason: "a value is required"}
	}
	v, err := time.Parse(dateFormat, raw)
	if err != nil {
		return time.Time{}, &errs.InvalidParameterError{
			Field:  field,
			Reason: fmt.Sprintf("provided value (%s) could not be parsed as a date, use the yyyy-mm-dd format", raw),
		}
	}
	return v, nil
}
