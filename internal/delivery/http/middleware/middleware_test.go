package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/config"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/jwt"

	"github.com/google/uuid"
)

type stubTokens struct {
	active bool
	err    error
}

func (s stubTokens) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return s.active, s.err
}

func TestAuthenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Minute})
	userID := uuid.New()
	token, _, err := jwtService.GenerateAccessToken(userID, entity.RoleIDCoach)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	tests := []struct {
		name   string
		header string
		tokens stubTokens
		want   int
	}{
		{"valid", "Bearer " + token, stubTokens{active: true}, http.StatusOK},
		{"missing header", "", stubTokens{active: true}, http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, stubTokens{active: true}, http.StatusUnauthorized},
		{"bad token", "Bearer nope", stubTokens{active: true}, http.StatusUnauthorized},
		{"revoked", "Bearer " + token, stubTokens{active: false}, http.StatusUnauthorized},
		{"registry down", "Bearer " + token, stubTokens{err: errors.New("redis down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser uuid.UUID
			var gotRole int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = GetUserIDFromContext(r.Context())
				gotRole, _ = GetRoleIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			NewAuthMiddleware(jwtService, tt.tokens).Authenticate(next).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK && (gotUser != userID || gotRole != entity.RoleIDCoach) {
				t.Errorf("context user=%s role=%d", gotUser, gotRole)
			}
		})
	}
}

func TestRequireAdminOrCoach(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range []struct {
		name string
		role *int
		want int
	}{
		{"admin", intPtr(entity.RoleIDAdmin), http.StatusOK},
		{"coach", intPtr(entity.RoleIDCoach), http.StatusOK},
		{"player", intPtr(entity.RoleIDPlayer), http.StatusForbidden},
		{"no role", nil, http.StatusUnauthorized},
	} {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.role != nil {
				req = req.WithContext(context.WithValue(req.Context(), RoleIDKey, *tt.role))
			}
			rec := httptest.NewRecorder()

			RequireAdminOrCoach(next).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	NewCORSMiddleware().Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

	if rec.Code != http.StatusOK || called {
		t.Fatalf("preflight status = %d, next called = %t", rec.Code, called)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}

func intPtr(v int) *int { return &v }
