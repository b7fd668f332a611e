package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"recruitd/internal/model"
)

func applicant() *model.Person {
	return &model.Person{
		ID:       3,
		Username: "app",
		Role:     model.Role{ID: 1, Name: "applicant"},
	}
}

func servePolicy(t *testing.T, p *Policy, path string, principal *model.Person) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	ran := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if principal != nil {
		req = req.WithContext(WithPrincipal(req.Context(), principal))
	}
	rec := httptest.NewRecorder()
	p.Middleware(next).ServeHTTP(rec, req)
	return rec, ran
}

func TestPolicy_PublicRouteNeedsNoPrincipal(t *testing.T) {
	p := NewPolicy(PublicRule("/competence/*"))

	rec, ran := servePolicy(t, p, "/competence", nil)
	require.True(t, ran)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPolicy_AnonymousGetsUnauthorized(t *testing.T) {
	p := NewPolicy(CapabilityRule("/review/*", model.CapabilityRecruiter))

	rec, ran := servePolicy(t, p, "/review/getApplications", nil)
	require.False(t, ran)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPolicy_WrongCapabilityGetsForbidden(t *testing.T) {
	p := NewPolicy(CapabilityRule("/review/*", model.CapabilityRecruiter))

	rec, ran := servePolicy(t, p, "/review/getApplications", applicant())
	require.False(t, ran)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPolicy_MatchingCapabilityPasses(t *testing.T) {
	p := NewPolicy(CapabilityRule("/review/*", model.CapabilityRecruiter))

	_, ran := servePolicy(t, p, "/review/getApplications", recruiter())
	require.True(t, ran)
}

func TestPolicy_FirstMatchWins(t *testing.T) {
	// A broad public rule before a narrower restricted one: the public rule
	// decides for everything under the prefix.
	p := NewPolicy(
		PublicRule("/review/*"),
		CapabilityRule("/review/getApplications", model.CapabilityRecruiter),
	)

	_, ran := servePolicy(t, p, "/review/getApplications", nil)
	require.True(t, ran)
}

func TestPolicy_UnmatchedRouteRequiresAuthentication(t *testing.T) {
	p := NewPolicy(PublicRule("/competence/*"))

	rec, ran := servePolicy(t, p, "/somewhere/else", nil)
	require.False(t, ran)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	_, ran = servePolicy(t, p, "/somewhere/else", applicant())
	require.True(t, ran)
}

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/auth/generateToken", "/auth/generateToken", true},
		{"/auth/generateToken", "/auth/generateToken/extra", false},
		{"/review/*", "/review", true},
		{"/review/*", "/review/getApplications", true},
		{"/review/*", "/reviews", false},
		{"/review/*", "/application/submit", false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, matchPattern(c.pattern, c.path), "%s vs %s", c.pattern, c.path)
	}
}
