package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-admin-server/internal/models"
	"blog-admin-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGuardedEngine(t *testing.T, tokens service.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), TokenGuard(tokens, zap.NewNop()))
	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Success(gin.H{"ok": true}, "", GetRequestID(c)))
	}
	r.GET("/", ok)
	r.GET("/dictionary/list", ok)
	r.POST("/system/token/generate", ok)
	r.POST("/system/generate-token", ok)
	return r
}

func testTokens() service.TokenService {
	return service.NewTokenService("guard-secret", time.Hour, 24*time.Hour, zap.NewNop())
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestTokenGuard_WhitelistedPaths(t *testing.T) {
	r := newGuardedEngine(t, testTokens())

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/"},
		{http.MethodPost, "/system/token/generate"},
		{http.MethodPost, "/system/generate-token"},
	} {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestTokenGuard_RootEntryDoesNotWhitelistEverything(t *testing.T) {
	r := newGuardedEngine(t, testTokens())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dictionary/list", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, models.CodeUnauthorized, resp.Code)
	assert.Equal(t, "Authorization header is required", resp.Msg)
	assert.Nil(t, resp.Data)
}

func TestTokenGuard_EmptyBearerToken(t *testing.T) {
	r := newGuardedEngine(t, testTokens())

	req := httptest.NewRequest(http.MethodGet, "/dictionary/list", nil)
	req.Header.Set("Authorization", "Bearer ")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is required", decodeEnvelope(t, w).Msg)
}

func TestTokenGuard_InvalidToken(t *testing.T) {
	r := newGuardedEngine(t, testTokens())

	req := httptest.NewRequest(http.MethodGet, "/dictionary/list", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", decodeEnvelope(t, w).Msg)
}

func TestTokenGuard_ExpiredToken(t *testing.T) {
	tokens := testTokens()
	r := newGuardedEngine(t, tokens)

	result, err := tokens.Issue(models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/list", nil)
	req.Header.Set("Authorization", "Bearer "+result.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", decodeEnvelope(t, w).Msg)
}

func TestTokenGuard_ValidToken(t *testing.T) {
	tokens := testTokens()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), TokenGuard(tokens, zap.NewNop()))
	r.GET("/dictionary/list", func(c *gin.Context) {
		claims := GetClaims(c)
		require.NotNil(t, claims)
		c.JSON(http.StatusOK, models.Success(gin.H{"sub": claims.Subject}, "", GetRequestID(c)))
	})

	result, err := tokens.Issue(models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Username:         "admin",
	}, 0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/list", nil)
	req.Header.Set("Authorization", "Bearer "+result.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenGuard_RawTokenWithoutBearerPrefix(t *testing.T) {
	tokens := testTokens()
	r := newGuardedEngine(t, tokens)

	result, err := tokens.Issue(models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, 0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/list", nil)
	req.Header.Set("Authorization", result.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "a bare token without the Bearer prefix is accepted")
}
