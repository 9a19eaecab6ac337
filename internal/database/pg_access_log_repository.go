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
	"go.uber.org/zap"
)

// Compile-time check to ensure pgAccessLogRepository implements AccessLogRepository
var _ interfaces.AccessLogRepository = (*pgAccessLogRepository)(nil)

const accessLogColumns = `id, ip, region, country, province, city, method, path, params, user_agent, referer,
	status_code, response_time, device_type, os, browser, user_id, created_at, updated_at, deleted_at`

type pgAccessLogRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgAccessLogRepository creates a new PostgreSQL-backed AccessLogRepository.
func NewPgAccessLogRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.AccessLogRepository {
	return &pgAccessLogRepository{
		db:     db,
		logger: logger.Named("PgAccessLogRepo"),
	}
}

// Create inserts a new access log row.
func (r *pgAccessLogRepository) Create(ctx context.Context, entry *models.AccessLog) error {
	query := `INSERT INTO access_logs
		(ip, region, country, province, city, method, path, params, user_agent, referer,
		 status_code, response_time, device_type, os, browser, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		entry.IP, entry.Region, entry.Country, entry.Province, entry.City,
		entry.Method, entry.Path, entry.Params, entry.UserAgent, entry.Referer,
		entry.StatusCode, entry.ResponseTime, entry.DeviceType, entry.OS, entry.Browser, entry.UserID).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create access log in postgres", zap.Error(err), zap.String("ip", entry.IP))
		return fmt.Errorf("failed to create access log in postgres: %w", err)
	}
	return nil
}

// GetByID retrieves one access log row.
func (r *pgAccessLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AccessLog, error) {
	query := fmt.Sprintf(`SELECT %s FROM access_logs WHERE id = $1 AND deleted_at IS NULL`, accessLogColumns)
	entry := &models.AccessLog{}
	err := pgxscan.Get(ctx, r.db, entry, query, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrAccessLogNotFound
		}
		r.logger.Error("Failed to get access log by id from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get access log by id from postgres: %w", err)
	}
	return entry, nil
}

// List returns a page of access logs, newest first, plus the total.
func (r *pgAccessLogRepository) List(ctx context.Context, filter models.AccessLogFilter) ([]models.AccessLog, int64, error) {
	conds := []string{"deleted_at IS NULL"}
	args := []any{}

	if filter.IP != "" {
		args = append(args, "%"+filter.IP+"%")
		conds = append(conds, fmt.Sprintf("ip LIKE $%d", len(args)))
	}
	if filter.Path != "" {
		args = append(args, "%"+filter.Path+"%")
		conds = append(conds, fmt.Sprintf("path LIKE $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM access_logs WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("Failed to count access logs", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count access logs: %w", err)
	}

	args = append(args, filter.PageSize, filter.Offset())
	listQuery := fmt.Sprintf(`SELECT %s FROM access_logs WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		accessLogColumns, where, len(args)-1, len(args))

	var entries []models.AccessLog
	if err := pgxscan.Select(ctx, r.db, &entries, listQuery, args...); err != nil {
		r.logger.Error("Failed to list access logs", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list access logs: %w", err)
	}
	return entries, total, nil
}

// Count returns the number of live access log rows.
func (r *pgAccessLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM access_logs WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to count access logs", zap.Error(err))
		return 0, fmt.Errorf("failed to count access logs: %w", err)
	}
	return count, nil
}

// CountSince returns the number of live rows created at or after the given time.
func (r *pgAccessLogRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM access_logs WHERE created_at >= $1 AND deleted_at IS NULL`, since).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to count access logs since", zap.Error(err), zap.Time("since", since))
		return 0, fmt.Errorf("failed to count access logs since: %w", err)
	}
	return count, nil
}

// CountDistinctIPs returns the number of unique visitor IPs.
func (r *pgAccessLogRepository) CountDistinctIPs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(DISTINCT ip) FROM access_logs WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to count distinct ips", zap.Error(err))
		return 0, fmt.Errorf("failed to count distinct ips: %w", err)
	}
	return count, nil
}
