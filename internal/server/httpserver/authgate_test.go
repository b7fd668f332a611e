package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"recruitd/internal/errs"
	"recruitd/internal/model"
)

type stubTokens struct {
	subject string
	err     error
}

func (s *stubTokens) Issue(subject string) (string, time.Time, error) {
	return "tok-" + subject, time.Now().Add(time.Minute), nil
}

func (s *stubTokens) Validate(string) (string, error) { return s.subject, s.err }

type stubLookup struct {
	people map[string]*model.Person
	err    error
	calls  int
}

func (s *stubLookup) GetByUsername(_ context.Context, username string) (*model.Person, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.people[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return p, nil
}

// recordingHandler records whether it ran and what principal it saw.
func recordingHandler() (http.Handler, *bool, **model.Person) {
	ran := false
	var principal *model.Person
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		if p, ok := PrincipalFromCtx(r.Context()); ok {
			principal = p
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return h, &ran, &principal
}

func recruiter() *model.Person {
	return &model.Person{
		ID:       7,
		Username: "rev",
		Role:     model.Role{ID: 2, Name: "recruiter"},
	}
}

func TestAuthGate_ExemptRouteSkipsValidation(t *testing.T) {
	tokens := &stubTokens{err: errs.ErrTokenExpired}
	lookup := &stubLookup{}
	gate := NewAuthGate(tokens, lookup, []string{"/auth/generateToken"}, zap.NewNop())

	h, ran, _ := recordingHandler()
	req := httptest.NewRequest(http.MethodPost, "/auth/generateToken", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()

	gate.Middleware(h).ServeHTTP(rec, req)

	require.True(t, *ran)
	require.Equal(t, 0, lookup.calls)
}

func TestAuthGate_NoHeaderProceedsAnonymous(t *testing.T) {
	gate := NewAuthGate(&stubTokens{}, &stubLookup{}, nil, zap.NewNop())

	h, ran, principal := recordingHandler()
	req := httptest.NewRequest(http.MethodGet, "/review/getApplications", nil)
	rec := httptest.NewRecorder()

	gate.Middleware(h).ServeHTTP(rec, req)

	require.True(t, *ran)
	require.Nil(t, *principal)
}

func TestAuthGate_ExpiredTokenStopsPipeline(t *testing.T) {
	gate := NewAuthGate(&stubTokens{err: errs.ErrTokenExpired}, &stubLookup{}, nil, zap.NewNop())

	h, ran, _ := recordingHandler()
	req := httptest.NewRequest(http.MethodGet, "/review/getApplications", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	gate.Middleware(h).ServeHTTP(rec, req)

	require.False(t, *ran, "handler must never execute on an expired token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["error"], "expired")
}

func TestAuthGate_MalformedTokenRejected(t *testing.T) {
	for _, tokenErr := range []error{errs.ErrTokenMalformed, errs.ErrSignatureInvalid} {
		gate := NewAuthGate(&stubTokens{err: tokenErr}, &stubLookup{}, nil, zap.NewNop())

		h, ran, _ := recordingHandler()
		req := httptest.NewRequest(http.MethodGet, "/review/getApplications", nil)
		req.Header.Set("Authorization", "Bearer bad")
		rec := httptest.NewRecorder()

		gate.Middleware(h).ServeHTTP(rec, req)

		require.False(t, *ran)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthGate_ValidTokenInstallsFreshPrincipal(t *testing.T) {
	p := recruiter()
	lookup := &stubLookup{people: map[string]*model.Person{"rev": p}}
	gate := NewAuthGate(&stubTokens{subject: "rev"}, lookup, nil, zap.NewNop())

	h, ran, principal := recordingHandler()
	req := httptest.NewRequest(http.MethodGet, "/review/getApplications", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	gate.Middleware(h).ServeHTTP(rec, req)

	require.True(t, *ran)
	require.Equal(t, 1, lookup.calls, "principal must be resolved against the store per request")
	require.NotNil(t, *principal)
	require.Equal(t, "rev", (*principal).Username)
}

func TestAuthGate_UnknownSubjectProceedsAnonymous(t *testing.T) {
	lookup := &stubLookup{people: map[string]*model.Person{}}
	gate := NewAuthGate(&stubTokens{subject: "ghost"}, lookup, nil, zap.NewNop())

	h, ran, principal := recordingHandler()
	req := httptest.NewRequest(http.MethodGet, "/review/getApplications", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	gate.Middleware(h).ServeHTTP(rec, req)

	require.True(t, *ran)
	require.Nil(t, *principal)
}

func TestAuthGate_LookupFailureIsInternal(t *testing.T) {
	lookup := &stubLookup{err: context.DeadlineExceeded}
	gate := NewAuthGate(&stubTokens{subject: "rev"}, lookup, nil, zap.NewNop())

	h, ran, _ := recordingHandler()
	req := httptest.NewRequest(http.MethodGet, "/review/getApplications", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	gate.Middleware(h).ServeHTTP(rec, req)

	require.False(t, *ran)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
