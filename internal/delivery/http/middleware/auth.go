package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "stepup/internal/delivery/http/helpers"
	"stepup/internal/domain"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	principalKey contextKey = "principal"
)

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// PrincipalFromContext returns the authenticated principal, if present.
func PrincipalFromContext(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*domain.Principal)
	return p, ok
}

func withPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	ctx = context.WithValue(ctx, principalKey, p)
	return SetUserID(ctx, p.Subject)
}

// bearerToken extracts the token from the Authorization header. msg is set when
// the header is present but malformed.
func bearerToken(r *http.Request) (token string, msg string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", "missing authorization header"
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", "invalid authorization format"
	}
	token = strings.TrimSpace(auth[len(prefix):])
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}

func authenticate(tokens domain.TokenProvider, token string) (*domain.Principal, bool) {
	if !tokens.Validate(token) {
		return nil, false
	}
	p, err := tokens.Authentication(token)
	if err != nil {
		return nil, false
	}
	return p, true
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the caller in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(tokens domain.TokenProvider, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, msg := bearerToken(r)
			if msg != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, msg)
				return
			}
			p, ok := authenticate(tokens, token)
			if !ok {
				logger.DebugContext(r.Context(), "rejected token", "path", r.URL.Path)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(withPrincipal(r.Context(), p)))
		}
	}
}

// OptionalAuth sets the caller in the request context when a valid Bearer token is sent.
// Requests without one, or with an invalid one, continue anonymously.
func OptionalAuth(tokens domain.TokenProvider) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if token, msg := bearerToken(r); msg == "" {
				if p, ok := authenticate(tokens, token); ok {
					r = r.WithContext(withPrincipal(r.Context(), p))
				}
			}
			next(w, r)
		}
	}
}
