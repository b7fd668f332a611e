package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"recruitd/internal/auth"
	"recruitd/internal/errs"
	"recruitd/internal/model"
)

// PrincipalLookup resolves the current principal for a token subject. The gate
// calls it on every authenticated request, so capability changes take effect on
// the very next request without a token-invalidation list.
type PrincipalLookup interface {
	GetByUsername(ctx context.Context, username string) (*model.Person, error)
}

// AuthGate extracts and validates the bearer token on every request and
// installs the resolved principal into the request context.
type AuthGate struct {
	tokens auth.TokenService
	lookup PrincipalLookup
	exempt []string
	log    *zap.Logger
}

// NewAuthGate constructs the gate. Routes matching an exempt pattern skip
// credential handling entirely.
func NewAuthGate(tokens auth.TokenService, lookup PrincipalLookup, exempt []string, log *zap.Logger) *AuthGate {
	return &AuthGate{tokens: tokens, lookup: lookup, exempt: exempt, log: log}
}

// Middleware runs exactly once per request, before the policy and the handler.
func (g *AuthGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, pat := range g.exempt {
			if matchPattern(pat, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		tok, ok := bearerToken(r)
		if !ok {
			// No credential: proceed anonymous, the policy decides.
			next.ServeHTTP(w, r)
			return
		}

		subject, err := g.tokens.Validate(tok)
		if err != nil {
			if errors.Is(err, errs.ErrTokenExpired) {
				respondError(w, http.StatusUnauthorized, "token expired, please authenticate again")
				return
			}
			// Malformed or badly signed tokens are rejected outright.
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		p, err := g.lookup.GetByUsername(r.Context(), subject)
		switch {
		case err == nil:
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		case errors.Is(err, errs.ErrNotFound):
			// Subject no longer exists: proceed anonymous.
			next.ServeHTTP(w, r)
		default:
			g.log.Error("principal lookup", zap.String("subject", subject), zap.Error(err))
			respondError(w, http.StatusInternalServerError, "internal error")
		}
	})
}

// bearerToken extracts a non-empty token from "Authorization: Bearer <tok>".
func bearerToken(r *http.Request) (string, bool) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return "", false
	}
	t := strings.TrimSpace(h[7:])
	return t, t != ""
}
