package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context carrying the authenticated identity. Used by auth middleware.
func SetIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the authenticated identity from the context, if present.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := IdentityFromContext(ctx)
	if !ok || id.UserID == "" {
		return "", false
	}
	return id.UserID, true
}

// tokensFromRequest returns the session cookie token followed by the
// Authorization Bearer token, skipping whichever is absent.
func tokensFromRequest(r *http.Request) []string {
	var tokens []string
	if c, err := r.Cookie(SessionCookieName); err == nil {
		if t := strings.TrimSpace(c.Value); t != "" {
			tokens = append(tokens, t)
		}
	}
	const prefix = "Bearer "
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, prefix) {
		if t := strings.TrimSpace(auth[len(prefix):]); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// RequireAuth returns a wrapper that validates the session token and sets the identity in the request context.
// The cookie is tried first; a stale cookie falls back to a Bearer header when one is sent.
// If no token verifies, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			tokens := tokensFromRequest(r)
			if len(tokens) == 0 {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
				return
			}
			for _, token := range tokens {
				identity, err := verifier.Verify(token)
				if err != nil {
					logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
					continue
				}
				next(w, r.WithContext(SetIdentity(r.Context(), identity)))
				return
			}
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
		}
	}
}

// RequireRole returns a wrapper that lets through only identities holding one of roles.
// It must run inside RequireAuth; a request without identity gets 401, a wrong role 403.
func RequireRole(roles ...domain.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
				return
			}
			for _, role := range roles {
				if identity.Role == role {
					next(w, r)
					return
				}
			}
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "insufficient permissions")
		}
	}
}
