package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"recruitd/internal/model"
)

// GetApplications returns every application.
// GET /review/getApplications
func (h *Handlers) GetApplications(w http.ResponseWriter, r *http.Request) {
	h.log.Info("all applications requested", zap.String("by", currentUsername(r)))
	apps, err := h.review.GetApplications(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, toApplicationListJSON(apps))
}

// GetApplicationsByStatus returns applications matching a status.
// GET /review/getApplicationsByStatus/{status}
func (h *Handlers) GetApplicationsByStatus(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "status")
	status, err := model.ParseApplicationStatus(raw)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	h.log.Info("applications by status requested",
		zap.String("status", string(status)), zap.String("by", currentUsername(r)))
	apps, err := h.review.GetApplicationsByStatus(r.Context(), status)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, toApplicationListJSON(apps))
}

// GetApplicationsByID returns a single application.
// GET /review/getApplicationsById/{id}
func (h *Handlers) GetApplicationsByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntField("id", chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	app, err := h.review.GetApplicationByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, toApplicationJSON(*app))
}

// UpdateApplicationStatus transitions an application's review status with a
// version check. All three fields are parsed before any store access; a parse
// failure names the offending field and nothing else is processed.
// POST /review/updateApplicationStatus?applicationId=&status=&versionNumber=
func (h *Handlers) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	applicationID, err := parseIntField("applicationId", r.FormValue("applicationId"))
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	status := r.FormValue("status")
	if _, err := model.ParseApplicationStatus(status); err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	versionNumber, err := parseIntField("versionNumber", r.FormValue("versionNumber"))
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	h.log.Info("application status change requested",
		zap.Int64("applicationId", applicationID),
		zap.String("status", status),
		zap.Int64("versionNumber", versionNumber),
		zap.String("by", currentUsername(r)),
	)

	app, err := h.review.SetApplicationStatus(r.Context(), applicationID, status, versionNumber)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, toApplicationJSON(*app))
}

// currentUsername names the request principal for log entries.
func currentUsername(r *http.Request) string {
	if p, ok := PrincipalFromCtx(r.Context()); ok {
		return p.Username
	}
	return "anonymous"
}
