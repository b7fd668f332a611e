package httpserver

import (
	"net/http"
	"strings"

	"recruitd/internal/model"
)

// Rule maps a route pattern to the access it requires. A pattern is either an
// exact path or a prefix ending in "/*".
type Rule struct {
	Pattern    string
	Public     bool
	Capability model.Capability // empty means any authenticated principal
}

// PublicRule allows the pattern with no credential.
func PublicRule(pattern string) Rule { return Rule{Pattern: pattern, Public: true} }

// CapabilityRule requires an authenticated principal holding the capability.
func CapabilityRule(pattern string, c model.Capability) Rule {
	return Rule{Pattern: pattern, Capability: c}
}

// AuthenticatedRule requires any authenticated principal.
func AuthenticatedRule(pattern string) Rule { return Rule{Pattern: pattern} }

// Policy is an ordered rule list enforced after authentication. First match
// wins; unmatched routes require any authenticated principal.
type Policy struct {
	rules []Rule
}

// NewPolicy constructs a policy from ordered rules.
func NewPolicy(rules ...Rule) *Policy { return &Policy{rules: rules} }

// Middleware enforces the policy against the principal installed by the gate.
func (p *Policy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rule := p.match(r.URL.Path)
		if rule.Public {
			next.ServeHTTP(w, r)
			return
		}
		principal, ok := PrincipalFromCtx(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if rule.Capability != "" && !principal.HasCapability(rule.Capability) {
			respondError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (p *Policy) match(path string) Rule {
	for _, r := range p.rules {
		if matchPattern(r.Pattern, path) {
			return r
		}
	}
	return Rule{} // default: any authenticated principal
}

// matchPattern matches an exact path, or a prefix when the pattern ends in
// "/*" (the prefix itself also matches).
func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == pattern
}
