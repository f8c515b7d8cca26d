package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ProjectPilot-2025/portfolio-service/internal/auth"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
)

func newTestMiddleware(t *testing.T) (*JWTAuthMiddleware, *auth.TokenService) {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars!!", "portfolio-service")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return NewJWTAuthMiddleware(tokens), tokens
}

func authedRouter(am *JWTAuthMiddleware, handler gin.HandlerFunc, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", am.AuthMiddleware())
	if len(roles) > 0 {
		group.Use(am.RequireRoleMiddleware(roles...))
	}
	group.GET("/protected", handler)
	return router
}

func tokenFor(t *testing.T, tokens *auth.TokenService, role models.UserRole) string {
	t.Helper()
	token, err := tokens.Generate(&models.User{
		ID:    7,
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  role,
	}, time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	am, tokens := newTestMiddleware(t)

	var gotID uint
	var gotRole models.UserRole
	router := authedRouter(am, func(c *gin.Context) {
		gotID = c.GetUint("user_id")
		gotRole, _ = c.MustGet("user_role").(models.UserRole)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, models.RoleUser))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if gotID != 7 {
		t.Errorf("user_id = %d, want 7", gotID)
	}
	if gotRole != models.RoleUser {
		t.Errorf("user_role = %q, want %q", gotRole, models.RoleUser)
	}
}

func TestAuthMiddleware_RejectsBadHeaders(t *testing.T) {
	am, _ := newTestMiddleware(t)
	router := authedRouter(am, func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic abc123"},
		{"malformed", "Bearer"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	am, tokens := newTestMiddleware(t)
	router := authedRouter(am, func(c *gin.Context) { c.Status(http.StatusOK) })

	expired, err := tokens.Generate(&models.User{ID: 7, Role: models.RoleUser}, -time.Minute)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireRole_UserBlockedFromAdminRoute(t *testing.T) {
	am, tokens := newTestMiddleware(t)
	router := authedRouter(am, func(c *gin.Context) { c.Status(http.StatusOK) }, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, models.RoleUser))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestRequireRole_AdminPasses(t *testing.T) {
	am, tokens := newTestMiddleware(t)
	router := authedRouter(am, func(c *gin.Context) { c.Status(http.StatusOK) }, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, models.RoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
