package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"blog-admin-server/internal/interfaces"
	"blog-admin-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Compile-time check to ensure pgUserRepository implements UserRepository
var _ interfaces.UserRepository = (*pgUserRepository)(nil)

const userColumns = `id, username, email, password_hash, nickname, avatar, role, is_active, last_login_at, created_at, updated_at, deleted_at`

type pgUserRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgUserRepository creates a new PostgreSQL-backed UserRepository.
func NewPgUserRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.UserRepository {
	return &pgUserRepository{
		db:     db,
		logger: logger.Named("PgUserRepo"),
	}
}

// Create inserts a new user. A duplicate email or username that slipped past
// the service pre-check is remapped to the matching conflict error.
func (r *pgUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, email, password_hash, nickname, avatar, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("username", user.Username), zap.String("email", user.Email))

	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.Nickname, user.Avatar, user.Role, user.IsActive).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			logFields := []zap.Field{zap.String("username", user.Username), zap.String("email", user.Email)}
			if strings.Contains(pgErr.ConstraintName, "email") {
				r.logger.Warn("Attempted to create duplicate user by email", logFields...)
				return models.ErrEmailTaken
			}
			r.logger.Warn("Attempted to create duplicate user by username", logFields...)
			return models.ErrUsernameTaken
		}
		r.logger.Error("Failed to create user in postgres", zap.Error(err), zap.String("username", user.Username))
		return fmt.Errorf("failed to create user in postgres: %w", err)
	}
	r.logger.Info("User created successfully", zap.String("userID", user.ID.String()), zap.String("username", user.Username))
	return nil
}

func (r *pgUserRepository) getBy(ctx context.Context, cond string, arg any) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1 AND deleted_at IS NULL`, userColumns, cond)
	user := &models.User{}
	err := pgxscan.Get(ctx, r.db, user, query, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user from postgres", zap.Error(err), zap.String("cond", cond))
		return nil, fmt.Errorf("failed to get user from postgres: %w", err)
	}
	return user, nil
}

// GetByID retrieves a live user by ID.
func (r *pgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByUsername retrieves a live user by username.
func (r *pgUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "username", username)
}

// GetByEmail retrieves a live user by email.
func (r *pgUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

// UpdateLastLogin stamps the last successful login time.
func (r *pgUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE users SET last_login_at = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		r.logger.Error("Failed to update last login time", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to update last login time: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
