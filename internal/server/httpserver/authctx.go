package httpserver

import (
	"context"

	"recruitd/internal/model"
)

type ctxKey string

const principalKey ctxKey = "recruitd.principal"

// WithPrincipal stores the resolved principal in the request context. The
// principal lives only for this request; nothing is shared across requests.
func WithPrincipal(ctx context.Context, p *model.Person) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx fetches the principal from the request context. The second
// return value is false for anonymous requests.
func PrincipalFromCtx(ctx context.Context) (*model.Person, bool) {
	v := ctx.Value(principalKey)
	if v == nil {
		return nil, false
	}
	p, ok := v.(*model.Person)
	return p, ok && p != nil
}
