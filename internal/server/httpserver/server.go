package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Config holds router-level settings.
type Config struct {
	// AllowedOrigins configures CORS for browser clients.
	AllowedOrigins []string
}

// PublicPatterns lists the routes requiring no credential. The same list feeds
// the gate's exemptions and the policy's public rules so the two stages can
// never disagree.
func PublicPatterns() []string {
	return []string{
		"/auth/generateToken",
		"/person/register",
		"/competence/*",
		"/translation/*",
		"/metrics",
	}
}

// DefaultPolicy is the route to required-capability map of the system. First
// match wins; unmatched routes require any authenticated principal.
func DefaultPolicy() *Policy {
	rules := make([]Rule, 0, 8)
	for _, pat := range PublicPatterns() {
		rules = append(rules, PublicRule(pat))
	}
	rules = append(rules,
		CapabilityRule("/application/*", "applicant"),
		CapabilityRule("/review/*", "recruiter"),
		CapabilityRule("/person/find", "recruiter"),
	)
	return NewPolicy(rules...)
}

// NewRouter assembles the middleware pipeline and route table. Every request
// passes request id, logging, recovery, metrics, CORS, the authentication
// gate and then the authorization policy before its handler runs. The caller
// owns authLimit and stops it on shutdown.
func NewRouter(h *Handlers, gate *AuthGate, policy *Policy, cfg Config, authLimit *IPRateLimiter, reg *prometheus.Registry, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	metrics := newHTTPMetrics(reg)

	r.Use(RequestID)
	r.Use(Logging(log))
	r.Use(Recover(log))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(gate.Middleware)
	r.Use(policy.Middleware)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(authLimit.Middleware)
		r.Post("/auth/generateToken", h.GenerateToken)
		r.Post("/person/register", h.Register)
	})

	r.Get("/competence/getAll", h.ListCompetences)
	r.Get("/competence/getById/{id}", h.GetCompetence)

	r.Get("/translation/getLanguages", h.ListLanguages)
	r.Get("/translation/getCompetenceTranslation", h.GetCompetenceTranslations)

	r.Get("/person/find", h.FindPerson)

	r.Route("/application", func(r chi.Router) {
		r.Get("/getAllCompetenceProfiles", h.ListCompetenceProfiles)
		r.Post("/createCompetenceProfile", h.CreateCompetenceProfile)
		r.Get("/getAllAvailability", h.ListAvailability)
		r.Post("/createAvailability", h.CreateAvailability)
		r.Post("/submitApplication", h.SubmitApplication)
	})

	r.Route("/review", func(r chi.Router) {
		r.Get("/getApplications", h.GetApplications)
		r.Get("/getApplicationsByStatus/{status}", h.GetApplicationsByStatus)
		r.Get("/getApplicationsById/{id}", h.GetApplicationsByID)
		r.Post("/updateApplicationStatus", h.UpdateApplicationStatus)
	})

	return r
}
