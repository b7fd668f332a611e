package httpserver

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"recruitd/internal/model"
)

type competenceProfileJSON struct {
	CompetenceProfileID int64   `json:"competenceProfileId"`
	PersonID            int64   `json:"personId"`
	CompetenceID        int64   `json:"competenceId"`
	YearsOfExperience   float64 `json:"yearsOfExperience"`
}

func toProfileJSON(p model.CompetenceProfile) competenceProfileJSON {
	return competenceProfileJSON{
		CompetenceProfileID: p.ID,
		PersonID:            p.PersonID,
		CompetenceID:        p.CompetenceID,
		YearsOfExperience:   p.YearsOfExperience,
	}
}

type availabilityJSON struct {
	AvailabilityID int64  `json:"availabilityId"`
	PersonID       int64  `json:"personId"`
	FromDate       string `json:"fromDate"`
	ToDate         string `json:"toDate"`
}

func toAvailabilityJSON(a model.Availability) availabilityJSON {
	return availabilityJSON{
		AvailabilityID: a.ID,
		PersonID:       a.PersonID,
		FromDate:       a.FromDate.Format(dateFormat),
		ToDate:         a.ToDate.Format(dateFormat),
	}
}

// requirePrincipal returns the request principal or writes a 401. The policy
// guarantees a principal on these routes; this is the handler-level backstop.
func (h *Handlers) requirePrincipal(w http.ResponseWriter, r *http.Request) (*model.Person, bool) {
	p, ok := PrincipalFromCtx(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return p, true
}

// ListCompetenceProfiles returns the caller's competence profiles.
// GET /application/getAllCompetenceProfiles
func (h *Handlers) ListCompetenceProfiles(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}
	profiles, err := h.applications.ListCompetenceProfiles(r.Context(), p.ID)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	out := make([]competenceProfileJSON, 0, len(profiles))
	for _, pr := range profiles {
		out = append(out, toProfileJSON(pr))
	}
	respondJSON(w, http.StatusOK, out)
}

// CreateCompetenceProfile records claimed experience in a competence.
// POST /application/createCompetenceProfile?competenceId=&yearsOfExperience=
func (h *Handlers) CreateCompetenceProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}
	competenceID, err := parseIntField("competenceId", r.FormValue("competenceId"))
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	years, err := parseFloatField("yearsOfExperience", r.FormValue("yearsOfExperience"))
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	h.log.Info("competence profile creation requested",
		zap.Int64("personId", p.ID), zap.Int64("competenceId", competenceID))
	profile, err := h.applications.CreateCompetenceProfile(r.Context(), p.ID, competenceID, years)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, toProfileJSON(*profile))
}

// ListAvailability returns the caller's availability periods.
// GET /application/getAllAvailability
func (h *Handlers) ListAvailability(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}
	periods, err := h.applications.ListAvailability(r.Context(), p.ID)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	out := make([]availabilityJSON, 0, len(periods))
	for _, a := range periods {
		out = append(out, toAvailabilityJSON(a))
	}
	respondJSON(w, http.StatusOK, out)
}

// CreateAvailability records a period the applicant is available.
// POST /application/createAvailability?fromDate=&toDate=
func (h *Handlers) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}
	from, err := parseDateField("fromDate", r.FormValue("fromDate"))
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	to, err := parseDateField("toDate", r.FormValue("toDate"))
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	availability, err := h.applications.CreateAvailability(r.Context(), p.ID, from, to)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, toAvailabilityJSON(*availability))
}

type submitApplicationRequest struct {
	AvailabilityIDs      []int64 `json:"availabilityIds"`
	CompetenceProfileIDs []int64 `json:"competenceProfileIds"`
}

// SubmitApplication creates an application from previously created
// availability periods and competence profiles.
// POST /application/submitApplication
func (h *Handlers) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}
	var req submitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	h.log.Info("application submission requested", zap.Int64("personId", p.ID))
	app, err := h.applications.SubmitApplication(r.Context(), p.ID, req.AvailabilityIDs, req.CompetenceProfileIDs)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, toApplicationJSON(*app))
}
