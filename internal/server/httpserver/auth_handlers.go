package httpserver

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"recruitd/internal/service"
)

type tokenJSON struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
}

// GenerateToken authenticates username/password and issues a bearer token.
// POST /auth/generateToken
func (h *Handlers) GenerateToken(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		respondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}

	tokens, _, err := h.auth.LoginWithIP(r.Context(), username, password, ip)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenJSON{
		AccessToken: tokens.AccessToken,
		ExpiresAt:   tokens.ExpiresAt.Format(time.RFC3339),
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Pnr      string `json:"pnr"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new applicant account.
// POST /person/register
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	id, err := h.auth.Register(r.Context(), service.Registration{
		Name:     req.Name,
		Surname:  req.Surname,
		Pnr:      req.Pnr,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}
	h.log.Info("account registered", zap.String("username", req.Username))
	respondJSON(w, http.StatusCreated, map[string]int64{"personId": id})
}
