package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kariqs/klenhub-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestLogger())
	engine.GET("/open", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })
	engine.GET("/admin", RequireAuth(secret), RequireAdmin(), func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	return engine
}

func serve(engine *gin.Engine, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func token(t *testing.T, signingSecret, role string, ttl time.Duration) string {
	t.Helper()
	tok, err := utils.GenerateToken(signingSecret, "someone@klenhub.com", role, ttl)
	require.NoError(t, err)
	return tok
}

func TestAdminAccess(t *testing.T) {
	engine := newEngine()

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"no header", nil, http.StatusUnauthorized},
		{"not bearer", map[string]string{"Authorization": "Basic abc"}, http.StatusUnauthorized},
		{"garbage token", map[string]string{"Authorization": "Bearer abc"}, http.StatusUnauthorized},
		{"wrong secret", map[string]string{"Authorization": "Bearer " + token(t, "other", utils.RoleAdmin, time.Hour)}, http.StatusUnauthorized},
		{"expired", map[string]string{"Authorization": "Bearer " + token(t, secret, utils.RoleAdmin, -time.Minute)}, http.StatusUnauthorized},
		{"customer role", map[string]string{"Authorization": "Bearer " + token(t, secret, "user", time.Hour)}, http.StatusForbidden},
		{"admin", map[string]string{"Authorization": "Bearer " + token(t, secret, utils.RoleAdmin, time.Hour)}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(engine, "/admin", tt.header).Code)
		})
	}
}

func TestRequireAdminWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/", RequireAdmin(), func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusUnauthorized, serve(engine, "/", nil).Code)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	engine := newEngine()

	rec := serve(engine, "/open", nil)
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)

	rec = serve(engine, "/open", map[string]string{requestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}
