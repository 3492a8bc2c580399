package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"persona-lab/internal/domain"
	"persona-lab/internal/service"
)

func TestShareAuthMiddleware_AllowsValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := service.NewShareTokenService("secret", time.Hour)
	token, err := tokens.Issue("s1", "r1", domain.RespondentRoleValidator)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	r := gin.New()
	r.GET("/protected", ShareAuthMiddleware(tokens), func(c *gin.Context) {
		claims, ok := GetShareClaims(c)
		if !ok || claims.SessionID != "s1" {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestShareAuthMiddleware_RejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := service.NewShareTokenService("secret", time.Hour)

	r := gin.New()
	r.GET("/protected", ShareAuthMiddleware(tokens), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestShareAuthMiddleware_RejectsGarbageToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := service.NewShareTokenService("secret", time.Hour)

	r := gin.New()
	r.GET("/protected", ShareAuthMiddleware(tokens), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
