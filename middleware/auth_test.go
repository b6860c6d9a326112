package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servana/utils"

	"github.com/gin-gonic/gin"
)

func authRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuthUserMiddleware(), func(c *gin.Context) {
		id, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := authRouter(t)

	if w := doRequest(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if w := doRequest(r, "Bearer "); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for empty bearer, got %d", w.Code)
	}
	if w := doRequest(r, "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestAuthRejectsWrongRole(t *testing.T) {
	r := authRouter(t)

	token, err := utils.GenerateToken("ser-1", "servicer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if w := doRequest(r, "Bearer "+token); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for servicer token on user route, got %d", w.Code)
	}
}

func TestAuthAcceptsMatchingRole(t *testing.T) {
	r := authRouter(t)

	token, err := utils.GenerateToken("user-1", "customer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	w := doRequest(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
