package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"recruitd/internal/model"
)

type competenceJSON struct {
	CompetenceID int64  `json:"competenceId"`
	Name         string `json:"name"`
}

func toCompetenceJSON(c model.Competence) competenceJSON {
	return competenceJSON{CompetenceID: c.ID, Name: c.Name}
}

// FindPerson returns people whose first name matches exactly.
// GET /person/find?name=
func (h *Handlers) FindPerson(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.log.Info("person search requested", zap.String("name", name), zap.String("by", currentUsername(r)))
	people, err := h.persons.FindByName(r.Context(), name)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	out := make([]personJSON, 0, len(people))
	for _, p := range people {
		out = append(out, toPersonJSON(p))
	}
	respondJSON(w, http.StatusOK, out)
}

// ListCompetences returns the public competence catalog.
// GET /competence/getAll
func (h *Handlers) ListCompetences(w http.ResponseWriter, r *http.Request) {
	competences, err := h.competences.ListCompetences(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	out := make([]competenceJSON, 0, len(competences))
	for _, c := range competences {
		out = append(out, toCompetenceJSON(c))
	}
	respondJSON(w, http.StatusOK, out)
}

// GetCompetence returns one catalog entry.
// GET /competence/getById/{id}
func (h *Handlers) GetCompetence(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntField("id", chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	c, err := h.competences.GetCompetence(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, toCompetenceJSON(*c))
}
