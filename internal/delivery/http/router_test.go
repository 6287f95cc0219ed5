package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/config"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/http/handler"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/http/middleware"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/jwt"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/validator"

	"github.com/google/uuid"
)

type allowAll struct{}

func (allowAll) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return true, nil
}

func TestRouterAccessControl(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Minute})
	v := validator.NewValidator()

	router := NewRouter(
		handler.NewRecurrencePatternHandler(nil, nil, v),
		handler.NewTimeSlotHandler(nil, nil, v),
		handler.NewAuditLogHandler(nil),
		middleware.NewAuthMiddleware(jwtService, allowAll{}),
		middleware.NewCORSMiddleware(),
	).Setup()

	player, _, _ := jwtService.GenerateAccessToken(uuid.New(), entity.RoleIDPlayer)
	coach, _, _ := jwtService.GenerateAccessToken(uuid.New(), entity.RoleIDCoach)

	slotPath := "/api/v1/time-slots/" + uuid.NewString()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"health is public", http.MethodGet, "/api/v1/health", "", "", http.StatusOK},
		{"reads need a token", http.MethodGet, slotPath, "", "", http.StatusUnauthorized},
		{"removal needs a token", http.MethodPost, slotPath + "/remove-segment", "", "{}", http.StatusUnauthorized},
		{"players cannot remove segments", http.MethodPost, slotPath + "/remove-segment", player, "{}", http.StatusForbidden},
		{"players cannot generate", http.MethodPost, "/api/v1/recurrence-patterns/" + uuid.NewString() + "/generate", player, "{}", http.StatusForbidden},
		{"coaches reach validation", http.MethodPost, slotPath + "/remove-segment", coach, "{}", http.StatusBadRequest},
		{"audit logs are admin only", http.MethodGet, "/api/v1/admin/audit-logs", coach, "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}
