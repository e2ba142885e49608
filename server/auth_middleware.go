package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-auth-gateway/users"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyIdentity stores the identity carried by a verified access token
	ContextKeyIdentity ContextKey = "identity"
	// ContextKeyRequestID stores the per-request id
	ContextKeyRequestID ContextKey = "request_id"
)

// RequireAuth is middleware that validates a Bearer access token and attaches
// the caller's identity to the request context. A missing token is a 401; any
// verification failure is a 403 with a single message.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, err := s.auth.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				LoggerFromContext(r.Context()).Debug().Err(err).Msg("Access token rejected")
				sendErr(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
			next(w, r.WithContext(ctx))
		}
	}
}

// IdentityFromContext returns the identity attached by RequireAuth.
func IdentityFromContext(ctx context.Context) (users.Identity, bool) {
	identity, ok := ctx.Value(ContextKeyIdentity).(users.Identity)
	return identity, ok
}

// RequestIDFromContext returns the id assigned by RequestIDMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}
