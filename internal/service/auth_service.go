package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"blog-admin-server/internal/interfaces"
	"blog-admin-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegisterInput carries the validated fields of a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Nickname string
}

// AuthService registers accounts, authenticates logins and exposes user
// profiles.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	// Login returns the authenticated user and a fresh access token.
	Login(ctx context.Context, username, password string) (*models.User, *models.TokenResult, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Compile-time check to ensure authServiceImpl implements AuthService
var _ AuthService = (*authServiceImpl)(nil)

type authServiceImpl struct {
	userRepo interfaces.UserRepository
	tokens   TokenService
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo interfaces.UserRepository, tokens TokenService, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.Named("AuthService"),
	}
}

func (s *authServiceImpl) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	logFields := []zap.Field{zap.String("username", input.Username), zap.String("email", input.Email)}
	s.logger.Info("Registering new user", logFields...)

	if _, err := s.userRepo.GetByUsername(ctx, input.Username); err == nil {
		s.logger.Warn("Registration attempt for existing username", logFields...)
		return nil, models.ErrUsernameTaken
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		s.logger.Warn("Registration attempt for existing email", logFields...)
		return nil, models.ErrEmailTaken
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", append(logFields, zap.Error(err))...)
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Nickname:     input.Nickname,
		Avatar:       models.DefaultAvatar,
		Role:         models.RoleUser,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("User registered", zap.String("userID", user.ID.String()))
	return user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, *models.TokenResult, error) {
	username = strings.TrimSpace(username)
	s.logger.Info("Login attempt", zap.String("username", username))

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if !user.IsActive {
		s.logger.Warn("Login attempt for disabled account", zap.String("username", username))
		return nil, nil, models.ErrUserDisabled
	}
	if !checkPasswordHash(password, user.PasswordHash) {
		s.logger.Warn("Login attempt with wrong password", zap.String("username", username))
		return nil, nil, models.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Login still succeeds when the timestamp update fails.
		s.logger.Warn("Failed to update last login time", zap.String("username", username), zap.Error(err))
	} else {
		user.LastLoginAt = &now
	}

	token, err := s.tokens.Issue(models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String()},
		Username:         user.Username,
		Roles:            []string{user.Role},
	}, 0)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Login successful", zap.String("userID", user.ID.String()))
	return user, token, nil
}

func (s *authServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
