package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blog-admin-server/internal/interfaces"
	"blog-admin-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Compile-time check to ensure pgDictionaryRepository implements DictionaryRepository
var _ interfaces.DictionaryRepository = (*pgDictionaryRepository)(nil)

const dictionaryColumns = `id, type, name, description, is_enable, sort, parent_id, created_at, updated_at, deleted_at`

type pgDictionaryRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgDictionaryRepository creates a new PostgreSQL-backed DictionaryRepository.
func NewPgDictionaryRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.DictionaryRepository {
	return &pgDictionaryRepository{
		db:     db,
		logger: logger.Named("PgDictionaryRepo"),
	}
}

// Create inserts a new dictionary. Duplicate (type, name) pairs surface as
// ErrDictionaryNameTaken even when the pre-check missed a concurrent insert.
func (r *pgDictionaryRepository) Create(ctx context.Context, dict *models.Dictionary) error {
	query := `INSERT INTO dictionaries (type, name, description, is_enable, sort, parent_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("type", dict.Type), zap.String("name", dict.Name))

	err := r.db.QueryRow(ctx, query, dict.Type, dict.Name, dict.Description, dict.IsEnable, dict.Sort, dict.ParentID).
		Scan(&dict.ID, &dict.CreatedAt, &dict.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("Attempted to create duplicate dictionary",
				zap.String("type", dict.Type), zap.String("name", dict.Name), zap.String("constraint", pgErr.ConstraintName))
			return models.ErrDictionaryNameTaken
		}
		r.logger.Error("Failed to create dictionary in postgres", zap.Error(err), zap.String("name", dict.Name))
		return fmt.Errorf("failed to create dictionary in postgres: %w", err)
	}
	return nil
}

// GetByID retrieves a live dictionary by its ID.
func (r *pgDictionaryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Dictionary, error) {
	query := fmt.Sprintf(`SELECT %s FROM dictionaries WHERE id = $1 AND deleted_at IS NULL`, dictionaryColumns)
	dict := &models.Dictionary{}
	err := pgxscan.Get(ctx, r.db, dict, query, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Dictionary not found by ID", zap.String("id", id.String()))
			return nil, models.ErrDictionaryNotFound
		}
		r.logger.Error("Failed to get dictionary by id from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get dictionary by id from postgres: %w", err)
	}
	return dict, nil
}

// FindByTypeOrName looks for a live row colliding on type or name.
func (r *pgDictionaryRepository) FindByTypeOrName(ctx context.Context, dictType, name string, excludeID *uuid.UUID) (*models.Dictionary, error) {
	query := fmt.Sprintf(`SELECT %s FROM dictionaries WHERE (type = $1 OR name = $2) AND deleted_at IS NULL`, dictionaryColumns)
	args := []any{dictType, name}
	if excludeID != nil {
		query += ` AND id != $3`
		args = append(args, *excludeID)
	}
	query += ` LIMIT 1`

	dict := &models.Dictionary{}
	err := pgxscan.Get(ctx, r.db, dict, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDictionaryNotFound
		}
		r.logger.Error("Failed to find dictionary by type or name", zap.Error(err), zap.String("type", dictType), zap.String("name", name))
		return nil, fmt.Errorf("failed to find dictionary by type or name: %w", err)
	}
	return dict, nil
}

// List returns a page of live dictionaries plus the unpaginated total.
func (r *pgDictionaryRepository) List(ctx context.Context, filter models.DictionaryFilter) ([]models.Dictionary, int64, error) {
	conds := []string{"deleted_at IS NULL"}
	args := []any{}

	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		conds = append(conds, fmt.Sprintf("(name LIKE $%d OR description LIKE $%d)", len(args), len(args)))
	}
	if filter.IsEnable != nil {
		args = append(args, *filter.IsEnable)
		conds = append(conds, fmt.Sprintf("is_enable = $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM dictionaries WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("Failed to count dictionaries", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count dictionaries: %w", err)
	}

	args = append(args, filter.PageSize, filter.Offset())
	listQuery := fmt.Sprintf(`SELECT %s FROM dictionaries WHERE %s ORDER BY sort ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		dictionaryColumns, where, len(args)-1, len(args))

	var dicts []models.Dictionary
	if err := pgxscan.Select(ctx, r.db, &dicts, listQuery, args...); err != nil {
		r.logger.Error("Failed to list dictionaries", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list dictionaries: %w", err)
	}
	return dicts, total, nil
}

// ListByType returns enabled live dictionaries of the given type.
func (r *pgDictionaryRepository) ListByType(ctx context.Context, dictType string) ([]models.Dictionary, error) {
	query := fmt.Sprintf(`SELECT %s FROM dictionaries
		WHERE type = $1 AND is_enable = TRUE AND deleted_at IS NULL
		ORDER BY sort ASC, created_at DESC`, dictionaryColumns)

	var dicts []models.Dictionary
	if err := pgxscan.Select(ctx, r.db, &dicts, query, dictType); err != nil {
		r.logger.Error("Failed to list dictionaries by type", zap.Error(err), zap.String("type", dictType))
		return nil, fmt.Errorf("failed to list dictionaries by type: %w", err)
	}
	return dicts, nil
}

// Update persists mutable fields of a dictionary.
func (r *pgDictionaryRepository) Update(ctx context.Context, dict *models.Dictionary) error {
	query := `UPDATE dictionaries
		SET type = $2, name = $3, description = $4, is_enable = $5, sort = $6, parent_id = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.db.Exec(ctx, query, dict.ID, dict.Type, dict.Name, dict.Description, dict.IsEnable, dict.Sort, dict.ParentID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("Attempted to update dictionary into duplicate",
				zap.String("id", dict.ID.String()), zap.String("constraint", pgErr.ConstraintName))
			return models.ErrDictionaryNameTaken
		}
		r.logger.Error("Failed to update dictionary in postgres", zap.Error(err), zap.String("id", dict.ID.String()))
		return fmt.Errorf("failed to update dictionary in postgres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrDictionaryNotFound
	}
	return nil
}

// SoftDelete marks a dictionary deleted without removing the row.
func (r *pgDictionaryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE dictionaries SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to soft delete dictionary", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to soft delete dictionary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrDictionaryNotFound
	}
	return nil
}

// SoftDeleteMany marks a batch of dictionaries deleted and reports how many
// rows were affected.
func (r *pgDictionaryRepository) SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	query := `UPDATE dictionaries SET deleted_at = NOW() WHERE id = ANY($1) AND deleted_at IS NULL`
	tag, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		r.logger.Error("Failed to soft delete dictionaries", zap.Error(err), zap.Int("count", len(ids)))
		return 0, fmt.Errorf("failed to soft delete dictionaries: %w", err)
	}
	return tag.RowsAffected(), nil
}
