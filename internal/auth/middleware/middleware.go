package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"stockroom/internal/domain"

	"go.uber.org/zap"
)

type contextKey struct{}

var callerKey contextKey

// CallerFromContext returns the identity the Authenticate middleware
// attached to the request.
func CallerFromContext(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerKey).(domain.Caller)
	return caller, ok
}

type TokenVerifier interface {
	VerifyToken(tokenString string) (*domain.Caller, error)
}

type Middleware struct {
	verifier TokenVerifier
	logger   *zap.Logger
}

func NewMiddleware(verifier TokenVerifier, logger *zap.Logger) *Middleware {
	return &Middleware{
		verifier: verifier,
		logger:   logger,
	}
}

// Authenticate requires a valid bearer token and stores the caller identity
// in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing authorization header")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authorization header must use the Bearer scheme")
			return
		}

		caller, err := m.verifier.VerifyToken(token)
		if err != nil {
			m.logger.Debug("token rejected", zap.Error(err))
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), callerKey, *caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing caller identity")
			return
		}
		if !caller.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   code,
		"message": message,
	})
}
