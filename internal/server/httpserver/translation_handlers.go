package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"recruitd/internal/model"
)

type languageJSON struct {
	LanguageID   int64  `json:"languageId"`
	LanguageName string `json:"languageName"`
}

type translationJSON struct {
	CompetenceID int64  `json:"competenceId"`
	Translation  string `json:"translation"`
}

// ListLanguages returns the supported translation languages.
// GET /translation/getLanguages
func (h *Handlers) ListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.competences.ListLanguages(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	out := make([]languageJSON, 0, len(languages))
	for _, l := range languages {
		out = append(out, languageJSON{LanguageID: l.ID, LanguageName: l.Name})
	}
	respondJSON(w, http.StatusOK, out)
}

// GetCompetenceTranslations returns the competence catalog translated into the
// requested language.
// GET /translation/getCompetenceTranslation?language=
func (h *Handlers) GetCompetenceTranslations(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	h.log.Info("competence translations requested",
		zap.String("language", language), zap.String("by", currentUsername(r)))
	translations, err := h.competences.GetCompetenceTranslations(r.Context(), language)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	out := make([]translationJSON, 0, len(translations))
	for _, t := range translations {
		out = append(out, toTranslationJSON(t))
	}
	respondJSON(w, http.StatusOK, out)
}

func toTranslationJSON(t model.CompetenceTranslation) translationJSON {
	return translationJSON{CompetenceID: t.CompetenceID, Translation: t.Translation}
}
