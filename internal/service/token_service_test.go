package service

import (
	"testing"
	"time"

	"blog-admin-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTokenService() TokenService {
	return NewTokenService("test-secret", 168*time.Hour, 720*time.Hour, zap.NewNop())
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService()

	result, err := svc.Issue(models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Username:         "admin",
		Roles:            []string{"admin"},
	}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "168h0m0s", result.ExpiresIn)

	claims, err := svc.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Empty(t, claims.Type)
}

func TestTokenService_Issue_CustomTTL(t *testing.T) {
	svc := newTestTokenService()

	result, err := svc.Issue(models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "1h0m0s", result.ExpiresIn)

	claims, err := svc.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := newTestTokenService()

	result, err := svc.Issue(models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, -time.Minute)
	require.NoError(t, err)

	_, err = svc.Verify(result.AccessToken)
	assert.ErrorIs(t, err, models.ErrTokenExpired)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.Verify("not-a-jwt")
	assert.ErrorIs(t, err, models.ErrTokenMalformed)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	svc := newTestTokenService()
	other := NewTokenService("other-secret", time.Hour, time.Hour, zap.NewNop())

	result, err := other.Issue(models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, 0)
	require.NoError(t, err)

	_, err = svc.Verify(result.AccessToken)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestTokenService_Decode_NoVerification(t *testing.T) {
	svc := newTestTokenService()
	other := NewTokenService("other-secret", time.Hour, time.Hour, zap.NewNop())

	// Decode must read the claims even when the signature does not match.
	result, err := other.Issue(models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-2"},
		Username:         "visitor",
	}, 0)
	require.NoError(t, err)

	claims, err := svc.Decode(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.Subject)
	assert.Equal(t, "visitor", claims.Username)
}

func TestTokenService_Decode_Malformed(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.Decode("garbage")
	assert.ErrorIs(t, err, models.ErrTokenMalformed)
}

func TestTokenService_IssueRefresh(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.IssueRefresh(models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, 0)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, models.TokenTypeRefresh, claims.Type)
	assert.WithinDuration(t, time.Now().Add(720*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}
