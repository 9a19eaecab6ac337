package service

import (
	"errors"
	"fmt"
	"time"

	"blog-admin-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenService issues and validates the HS256 tokens used by the admin API.
type TokenService interface {
	// Issue signs an access token. A non-positive ttl falls back to the
	// configured default.
	Issue(claims models.Claims, ttl time.Duration) (*models.TokenResult, error)
	// IssueRefresh signs a refresh token tagged with Type "refresh".
	IssueRefresh(claims models.Claims, ttl time.Duration) (string, error)
	// Verify checks the signature and expiry and returns the claims.
	Verify(tokenString string) (*models.Claims, error)
	// Decode extracts claims without verifying the signature. Structurally
	// invalid tokens return ErrTokenMalformed.
	Decode(tokenString string) (*models.Claims, error)
}

// Compile-time check to ensure tokenServiceImpl implements TokenService
var _ TokenService = (*tokenServiceImpl)(nil)

type tokenServiceImpl struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     *zap.Logger
}

// NewTokenService creates a stateless TokenService bound to the signing
// secret and default lifetimes.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, logger *zap.Logger) TokenService {
	return &tokenServiceImpl{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger.Named("TokenService"),
	}
}

func (s *tokenServiceImpl) sign(claims models.Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err), zap.String("sub", claims.Subject))
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *tokenServiceImpl) Issue(claims models.Claims, ttl time.Duration) (*models.TokenResult, error) {
	if ttl <= 0 {
		ttl = s.accessTTL
	}
	signed, err := s.sign(claims, ttl)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Issued access token", zap.String("sub", claims.Subject), zap.Duration("ttl", ttl))
	return &models.TokenResult{
		AccessToken: signed,
		ExpiresIn:   ttl.String(),
	}, nil
}

func (s *tokenServiceImpl) IssueRefresh(claims models.Claims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.refreshTTL
	}
	claims.Type = models.TokenTypeRefresh
	signed, err := s.sign(claims, ttl)
	if err != nil {
		return "", err
	}
	s.logger.Debug("Issued refresh token", zap.String("sub", claims.Subject), zap.Duration("ttl", ttl))
	return signed, nil
}

func (s *tokenServiceImpl) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			s.logger.Debug("Token verification failed: expired")
			return nil, models.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			s.logger.Debug("Token verification failed: malformed")
			return nil, models.ErrTokenMalformed
		default:
			s.logger.Debug("Token verification failed", zap.Error(err))
			return nil, models.ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, models.ErrTokenInvalid
	}
	return claims, nil
}

func (s *tokenServiceImpl) Decode(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		s.logger.Debug("Token decode failed", zap.Error(err))
		return nil, models.ErrTokenMalformed
	}
	return claims, nil
}
