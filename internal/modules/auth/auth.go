package auth

import "context"

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Account is the slice of a user record that authentication needs.
type Account struct {
	ID           string
	Email        string
	Role         string
	PasswordHash string
}

// AccountSource looks accounts up at login time. The user module provides
// the implementation; auth stays independent of its types.
type AccountSource interface {
	AccountByEmail(ctx context.Context, email string) (Account, error)
}

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	ID    string
	Email string
	Role  string
}

type contextKey struct{}

// IdentityFromContext returns the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

func withIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}
