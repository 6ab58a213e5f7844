package auth

import "context"

// Principal is the resolved caller of a request. IsAdmin always
// reflects the persisted user row at resolution time, never the
// token claim alone.
type Principal struct {
	UserID  int64
	IsAdmin bool
}

type principalKey struct{}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the principal from context (if any).
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}
