package auth

import "context"

// Identity is the authenticated caller attached to request context.
type Identity struct {
	UserID string
	Email  string
}

type ctxKey int

const ctxIdentity ctxKey = iota

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

// IdentityFrom returns the caller identity, or false when the request was
// anonymous (no token, or an optional-mode token that failed verification).
func IdentityFrom(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(ctxIdentity).(Identity)
	return v, ok
}
