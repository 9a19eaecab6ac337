package service

import (
	"context"
	"time"

	"blog-admin-server/internal/geoip"
	"blog-admin-server/internal/interfaces"
	"blog-admin-server/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccessLogService records and queries enriched request logs.
type AccessLogService interface {
	// Record geo-enriches the entry and persists it. Geolocation failures
	// degrade to an un-enriched insert and never fail the caller.
	Record(ctx context.Context, entry *models.AccessLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AccessLog, error)
	List(ctx context.Context, filter models.AccessLogFilter) ([]models.AccessLog, int64, error)
	Stats(ctx context.Context) (*models.AccessLogStats, error)
}

// Compile-time check to ensure accessLogServiceImpl implements AccessLogService
var _ AccessLogService = (*accessLogServiceImpl)(nil)

type accessLogServiceImpl struct {
	repo     interfaces.AccessLogRepository
	resolver *geoip.Resolver
	logger   *zap.Logger
}

// NewAccessLogService creates a new AccessLogService. The resolver may be
// nil, in which case entries are stored without geolocation.
func NewAccessLogService(repo interfaces.AccessLogRepository, resolver *geoip.Resolver, logger *zap.Logger) AccessLogService {
	return &accessLogServiceImpl{
		repo:     repo,
		resolver: resolver,
		logger:   logger.Named("AccessLogService"),
	}
}

func (s *accessLogServiceImpl) enrich(ctx context.Context, entry *models.AccessLog) {
	if s.resolver == nil || entry.IP == "" {
		return
	}
	info := s.resolver.Resolve(ctx, entry.IP)
	if !info.Succeeded() {
		return
	}
	entry.Region = optional(info.Region)
	entry.Country = optional(info.Country)
	entry.Province = optional(info.RegionName)
	entry.City = optional(info.City)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (s *accessLogServiceImpl) Record(ctx context.Context, entry *models.AccessLog) error {
	s.enrich(ctx, entry)

	err := s.repo.Create(ctx, entry)
	if err != nil && entry.Country != nil {
		// Retry without the geo columns before giving up.
		s.logger.Warn("Access log insert with geolocation failed, retrying bare",
			zap.String("ip", entry.IP), zap.Error(err))
		entry.Region, entry.Country, entry.Province, entry.City = nil, nil, nil, nil
		err = s.repo.Create(ctx, entry)
	}
	if err != nil {
		return err
	}
	s.logger.Debug("Access log recorded",
		zap.String("ip", entry.IP), zap.String("path", entry.Path), zap.Int("status", entry.StatusCode))
	return nil
}

func (s *accessLogServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.AccessLog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *accessLogServiceImpl) List(ctx context.Context, filter models.AccessLogFilter) ([]models.AccessLog, int64, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *accessLogServiceImpl) Stats(ctx context.Context) (*models.AccessLogStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.repo.CountSince(ctx, midnight)
	if err != nil {
		return nil, err
	}

	unique, err := s.repo.CountDistinctIPs(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AccessLogStats{
		TotalLogs:      total,
		TodayLogs:      today,
		UniqueVisitors: unique,
	}, nil
}
