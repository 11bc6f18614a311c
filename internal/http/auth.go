package http

import (
	"context"
	"net/http"
)

// User identifies the caller. The reverse proxy in front of the service
// performs authentication and forwards the identity in headers.
type User struct {
	ID    string
	Email string
}

type userContextKey struct{}

// requireUser rejects requests without an X-User-ID header and stores the
// identity in the request context for handlers.
func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			writeError(w, http.StatusUnauthorized, "missing user identity")
			return
		}

		user := User{
			ID:    userID,
			Email: r.Header.Get("X-User-Email"),
		}
		ctx := context.WithValue(r.Context(), userContextKey{}, user)
		next(w, r.WithContext(ctx))
	}
}

func userFrom(ctx context.Context) User {
	user, _ := ctx.Value(userContextKey{}).(User)
	return user
}
