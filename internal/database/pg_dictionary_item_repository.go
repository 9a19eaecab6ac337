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

// Compile-time check to ensure pgDictionaryItemRepository implements DictionaryItemRepository
var _ interfaces.DictionaryItemRepository = (*pgDictionaryItemRepository)(nil)

const dictionaryItemColumns = `id, dictionary_id, name, value, description, is_enable, sort, created_at, updated_at, deleted_at`

type pgDictionaryItemRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgDictionaryItemRepository creates a new PostgreSQL-backed DictionaryItemRepository.
func NewPgDictionaryItemRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.DictionaryItemRepository {
	return &pgDictionaryItemRepository{
		db:     db,
		logger: logger.Named("PgDictionaryItemRepo"),
	}
}

// mapItemConflict distinguishes the two per-dictionary unique indexes.
func (r *pgDictionaryItemRepository) mapItemConflict(pgErr *pgconn.PgError) error {
	if strings.Contains(pgErr.ConstraintName, "value") {
		return models.ErrItemValueTaken
	}
	return models.ErrItemNameTaken
}

// Create inserts a new dictionary item.
func (r *pgDictionaryItemRepository) Create(ctx context.Context, item *models.DictionaryItem) error {
	query := `INSERT INTO dictionary_items (dictionary_id, name, value, description, is_enable, sort)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	r.logger.Debug("Executing query", zap.String("query", query),
		zap.String("dictionaryID", item.DictionaryID.String()), zap.String("name", item.Name), zap.Int("value", item.Value))

	err := r.db.QueryRow(ctx, query, item.DictionaryID, item.Name, item.Value, item.Description, item.IsEnable, item.Sort).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("Attempted to create duplicate dictionary item",
				zap.String("dictionaryID", item.DictionaryID.String()), zap.String("constraint", pgErr.ConstraintName))
			return r.mapItemConflict(pgErr)
		}
		r.logger.Error("Failed to create dictionary item in postgres", zap.Error(err), zap.String("name", item.Name))
		return fmt.Errorf("failed to create dictionary item in postgres: %w", err)
	}
	return nil
}

// GetByID retrieves a live dictionary item by its ID.
func (r *pgDictionaryItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DictionaryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM dictionary_items WHERE id = $1 AND deleted_at IS NULL`, dictionaryItemColumns)
	item := &models.DictionaryItem{}
	err := pgxscan.Get(ctx, r.db, item, query, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Dictionary item not found by ID", zap.String("id", id.String()))
			return nil, models.ErrDictionaryItemNotFound
		}
		r.logger.Error("Failed to get dictionary item by id from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get dictionary item by id from postgres: %w", err)
	}
	return item, nil
}

func (r *pgDictionaryItemRepository) findOne(ctx context.Context, cond string, condArg any, dictionaryID uuid.UUID, excludeID *uuid.UUID) (*models.DictionaryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM dictionary_items WHERE dictionary_id = $1 AND %s = $2 AND deleted_at IS NULL`,
		dictionaryItemColumns, cond)
	args := []any{dictionaryID, condArg}
	if excludeID != nil {
		query += ` AND id != $3`
		args = append(args, *excludeID)
	}
	query += ` LIMIT 1`

	item := &models.DictionaryItem{}
	err := pgxscan.Get(ctx, r.db, item, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDictionaryItemNotFound
		}
		r.logger.Error("Failed to find dictionary item", zap.Error(err), zap.String("dictionaryID", dictionaryID.String()))
		return nil, fmt.Errorf("failed to find dictionary item: %w", err)
	}
	return item, nil
}

// FindByName looks for a live item with the same name inside one dictionary.
func (r *pgDictionaryItemRepository) FindByName(ctx context.Context, dictionaryID uuid.UUID, name string, excludeID *uuid.UUID) (*models.DictionaryItem, error) {
	return r.findOne(ctx, "name", name, dictionaryID, excludeID)
}

// FindByValue looks for a live item with the same enum value inside one dictionary.
func (r *pgDictionaryItemRepository) FindByValue(ctx context.Context, dictionaryID uuid.UUID, value int, excludeID *uuid.UUID) (*models.DictionaryItem, error) {
	return r.findOne(ctx, "value", value, dictionaryID, excludeID)
}

// List returns a page of live items plus the unpaginated total.
func (r *pgDictionaryItemRepository) List(ctx context.Context, filter models.DictionaryItemFilter) ([]models.DictionaryItem, int64, error) {
	conds := []string{"deleted_at IS NULL"}
	args := []any{}

	if filter.DictionaryID != nil {
		args = append(args, *filter.DictionaryID)
		conds = append(conds, fmt.Sprintf("dictionary_id = $%d", len(args)))
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
	countQuery := `SELECT COUNT(*) FROM dictionary_items WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("Failed to count dictionary items", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count dictionary items: %w", err)
	}

	args = append(args, filter.PageSize, filter.Offset())
	listQuery := fmt.Sprintf(`SELECT %s FROM dictionary_items WHERE %s ORDER BY sort ASC, value ASC LIMIT $%d OFFSET $%d`,
		dictionaryItemColumns, where, len(args)-1, len(args))

	var items []models.DictionaryItem
	if err := pgxscan.Select(ctx, r.db, &items, listQuery, args...); err != nil {
		r.logger.Error("Failed to list dictionary items", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list dictionary items: %w", err)
	}
	return items, total, nil
}

// ListByDictionaryID returns enabled live items of one dictionary, ordered.
func (r *pgDictionaryItemRepository) ListByDictionaryID(ctx context.Context, dictionaryID uuid.UUID) ([]models.DictionaryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM dictionary_items
		WHERE dictionary_id = $1 AND is_enable = TRUE AND deleted_at IS NULL
		ORDER BY sort ASC, value ASC`, dictionaryItemColumns)

	var items []models.DictionaryItem
	if err := pgxscan.Select(ctx, r.db, &items, query, dictionaryID); err != nil {
		r.logger.Error("Failed to list dictionary items by dictionary", zap.Error(err), zap.String("dictionaryID", dictionaryID.String()))
		return nil, fmt.Errorf("failed to list dictionary items by dictionary: %w", err)
	}
	return items, nil
}

// MaxValue returns the highest live enum value in a dictionary.
func (r *pgDictionaryItemRepository) MaxValue(ctx context.Context, dictionaryID uuid.UUID) (int, bool, error) {
	query := `SELECT MAX(value) FROM dictionary_items WHERE dictionary_id = $1 AND deleted_at IS NULL`
	var max *int
	if err := r.db.QueryRow(ctx, query, dictionaryID).Scan(&max); err != nil {
		r.logger.Error("Failed to get max item value", zap.Error(err), zap.String("dictionaryID", dictionaryID.String()))
		return 0, false, fmt.Errorf("failed to get max item value: %w", err)
	}
	if max == nil {
		return 0, false, nil
	}
	return *max, true, nil
}

// Update persists mutable fields of a dictionary item.
func (r *pgDictionaryItemRepository) Update(ctx context.Context, item *models.DictionaryItem) error {
	query := `UPDATE dictionary_items
		SET dictionary_id = $2, name = $3, value = $4, description = $5, is_enable = $6, sort = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.db.Exec(ctx, query, item.ID, item.DictionaryID, item.Name, item.Value, item.Description, item.IsEnable, item.Sort)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("Attempted to update dictionary item into duplicate",
				zap.String("id", item.ID.String()), zap.String("constraint", pgErr.ConstraintName))
			return r.mapItemConflict(pgErr)
		}
		r.logger.Error("Failed to update dictionary item in postgres", zap.Error(err), zap.String("id", item.ID.String()))
		return fmt.Errorf("failed to update dictionary item in postgres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrDictionaryItemNotFound
	}
	return nil
}

// SoftDelete marks a dictionary item deleted.
func (r *pgDictionaryItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE dictionary_items SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to soft delete dictionary item", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to soft delete dictionary item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrDictionaryItemNotFound
	}
	return nil
}

// SoftDeleteMany marks a batch of items deleted.
func (r *pgDictionaryItemRepository) SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	query := `UPDATE dictionary_items SET deleted_at = NOW() WHERE id = ANY($1) AND deleted_at IS NULL`
	tag, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		r.logger.Error("Failed to soft delete dictionary items", zap.Error(err), zap.Int("count", len(ids)))
		return 0, fmt.Errorf("failed to soft delete dictionary items: %w", err)
	}
	return tag.RowsAffected(), nil
}
