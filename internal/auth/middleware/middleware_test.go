package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/domain"
	apperrors "stockroom/internal/errors"

	"go.uber.org/zap"
)

type mockTokenVerifier struct {
	VerifyTokenFunc func(tokenString string) (*domain.Caller, error)
}

func (m *mockTokenVerifier) VerifyToken(tokenString string) (*domain.Caller, error) {
	return m.VerifyTokenFunc(tokenString)
}

func captureHandler(captured *domain.Caller, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if caller, ok := CallerFromContext(r.Context()); ok {
			*captured = caller
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw := NewMiddleware(&mockTokenVerifier{}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)

	var caller domain.Caller
	var called bool
	mw.Authenticate(captureHandler(&caller, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Errorf("handler must not run without credentials")
	}
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	mw := NewMiddleware(&mockTokenVerifier{}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Basic abc123")

	var caller domain.Caller
	var called bool
	mw.Authenticate(captureHandler(&caller, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	mw := NewMiddleware(&mockTokenVerifier{
		VerifyTokenFunc: func(tokenString string) (*domain.Caller, error) {
			return nil, apperrors.NewUnauthorizedError("invalid or expired token")
		},
	}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	var caller domain.Caller
	var called bool
	mw.Authenticate(captureHandler(&caller, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Errorf("handler must not run with an invalid token")
	}
}

func TestAuthenticate_AttachesCaller(t *testing.T) {
	mw := NewMiddleware(&mockTokenVerifier{
		VerifyTokenFunc: func(tokenString string) (*domain.Caller, error) {
			if tokenString != "good-token" {
				t.Errorf("expected raw token forwarded, got %q", tokenString)
			}
			return &domain.Caller{ID: 2, Username: "user", Role: domain.RoleUser}, nil
		},
	}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	var caller domain.Caller
	var called bool
	mw.Authenticate(captureHandler(&caller, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !called {
		t.Fatalf("expected handler to run")
	}
	if caller.ID != 2 || caller.Username != "user" {
		t.Errorf("unexpected caller in context: %+v", caller)
	}
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	mw := NewMiddleware(&mockTokenVerifier{
		VerifyTokenFunc: func(tokenString string) (*domain.Caller, error) {
			return &domain.Caller{ID: 2, Username: "user", Role: domain.RoleUser}, nil
		},
	}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	var caller domain.Caller
	var called bool
	mw.Authenticate(mw.RequireAdmin(captureHandler(&caller, &called))).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if called {
		t.Errorf("handler must not run for non-admin callers")
	}
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	mw := NewMiddleware(&mockTokenVerifier{
		VerifyTokenFunc: func(tokenString string) (*domain.Caller, error) {
			return &domain.Caller{ID: 1, Username: "admin", Role: domain.RoleAdmin}, nil
		},
	}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	var caller domain.Caller
	var called bool
	mw.Authenticate(mw.RequireAdmin(captureHandler(&caller, &called))).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !called {
		t.Errorf("expected handler to run for admin callers")
	}
}

func TestRequireAdmin_WithoutAuthenticate(t *testing.T) {
	mw := NewMiddleware(&mockTokenVerifier{}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)

	var caller domain.Caller
	var called bool
	mw.RequireAdmin(captureHandler(&caller, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 when no caller is attached, got %d", rec.Code)
	}
}
