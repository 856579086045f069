package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"betawave/internal/core"

	"go.uber.org/zap"
)

// IdentityKey holds the resolved caller identity in the request context.
const IdentityKey contextKey = "identity"

// AuthHeader carries the signed session token.
const AuthHeader = "AUTH_TOKEN"

type IdentityResolver interface {
	IdentityFromToken(token string) (core.Identity, error)
}

// AuthMiddleware validates the session token once per request and stores
// the resolved identity in the context. Paths listed as public skip the
// check entirely.
type AuthMiddleware struct {
	logs       *zap.SugaredLogger
	identities IdentityResolver
	public     map[string]struct{}
}

func NewAuthMiddleware(logger *zap.SugaredLogger, identities IdentityResolver, publicPaths ...string) *AuthMiddleware {
	public := make(map[string]struct{}, len(publicPaths))
	for _, path := range publicPaths {
		public[path] = struct{}{}
	}

	return &AuthMiddleware{
		logs:       logger,
		identities: identities,
		public:     public,
	}
}

func (m *AuthMiddleware) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.public[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		requestID := ""
		if reqIDCtx := r.Context().Value(RequestIDKey); reqIDCtx != nil {
			requestID = reqIDCtx.(string)
		}

		token := r.Header.Get(AuthHeader)
		if token == "" {
			m.deny(w, "missing "+AuthHeader+" header")
			m.logs.Errorw("missing auth token", "path", r.URL.Path, "request_id", requestID)
			return
		}

		ident, err := m.identities.IdentityFromToken(token)
		if err != nil {
			m.deny(w, "invalid or expired token")
			m.logs.Errorw("failed to resolve identity",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) deny(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": reason})
}
