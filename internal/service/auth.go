// Package service contains application services for authentication, review and
// application submission.
package service

import (
	"context"

	"recruitd/internal/auth"
	pkgcrypto "recruitd/internal/crypto"
	"recruitd/internal/errs"
	"recruitd/internal/limiter"
	"recruitd/internal/model"
	"recruitd/internal/repository"
)

// AuthService defines registration and login.
type AuthService interface {
	// Register creates a new applicant account with secure password hashing.
	Register(ctx context.Context, reg Registration) (personID int64, err error)
	// LoginWithIP applies rate-limiting and authenticates the user, issuing a
	// bearer token on success.
	LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, model.Person, error)
}

// Registration carries the fields of a new applicant account.
type Registration struct {
	Name     string
	Surname  string
	Pnr      string
	Email    string
	Username string
	Password string
}

type AuthServiceImpl struct {
	persons repository.PersonRepository
	tokens  auth.TokenService
	lim     limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(persons repository.PersonRepository, tokens auth.TokenService, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{persons: persons, tokens: tokens, lim: lim}
}

// Register creates a new applicant account with a per-user salt.
func (s *AuthServiceImpl) Register(ctx context.Context, reg Registration) (int64, error) {
	if reg.Username == "" {
		return 0, &errs.InvalidParameterError{Field: "username", Reason: "a value is required"}
	}
	if reg.Password == "" {
		return 0, &errs.InvalidParameterError{Field: "password", Reason: "a value is required"}
	}
	salt, err := pkgcrypto.RandBytes(16)
	if err != nil {
		return 0, err
	}
	p := &model.Person{
		Name:     reg.Name,
		Surname:  reg.Surname,
		Pnr:      reg.Pnr,
		Email:    reg.Email,
		Username: reg.Username,
		PwdHash:  pkgcrypto.HashPassword([]byte(reg.Password), salt),
		Salt:     salt,
		Role:     model.Role{Name: string(model.CapabilityApplicant)},
	}
	return s.persons.Create(ctx, p)
}

// LoginWithIP authenticates with rate limiting by (username, ip). Unknown user
// and wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, model.Person, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, username, ipHash)
	if err != nil {
		return model.Tokens{}, model.Person{}, err
	}
	if !allowed {
		return model.Tokens{}, model.Person{}, errs.ErrRateLimited
	}

	p, err := s.persons.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), p.Salt, p.PwdHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, username, ipHash); ferr == nil && blocked {
			return model.Tokens{}, model.Person{}, errs.ErrRateLimited
		}
		return model.Tokens{}, model.Person{}, errs.ErrUnauthorized
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, username, ipHash)

	access, exp, err := s.tokens.Issue(p.Username)
	if err != nil {
		return model.Tokens{}, model.Person{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, *p, nil
}
