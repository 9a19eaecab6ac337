package service

import (
	"context"
	"errors"
	"fmt"

	"blog-admin-server/internal/interfaces"
	"blog-admin-server/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DictionaryService manages dictionary groups.
type DictionaryService interface {
	Create(ctx context.Context, dict *models.Dictionary) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dictionary, error)
	List(ctx context.Context, filter models.DictionaryFilter) ([]models.Dictionary, int64, error)
	ListByType(ctx context.Context, dictType string) ([]models.Dictionary, error)
	Update(ctx context.Context, id uuid.UUID, update models.DictionaryUpdate) (*models.Dictionary, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// Compile-time check to ensure dictionaryServiceImpl implements DictionaryService
var _ DictionaryService = (*dictionaryServiceImpl)(nil)

type dictionaryServiceImpl struct {
	repo   interfaces.DictionaryRepository
	logger *zap.Logger
}

// NewDictionaryService creates a new DictionaryService.
func NewDictionaryService(repo interfaces.DictionaryRepository, logger *zap.Logger) DictionaryService {
	return &dictionaryServiceImpl{
		repo:   repo,
		logger: logger.Named("DictionaryService"),
	}
}

// checkCollision pre-checks type/name uniqueness against live rows. The
// unique index still covers the race between check and write.
func (s *dictionaryServiceImpl) checkCollision(ctx context.Context, dictType, name string, excludeID *uuid.UUID) error {
	existing, err := s.repo.FindByTypeOrName(ctx, dictType, name, excludeID)
	if err != nil {
		if errors.Is(err, models.ErrDictionaryNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check dictionary uniqueness: %w", err)
	}
	if existing.Type == dictType {
		s.logger.Warn("Dictionary type already taken", zap.String("type", dictType))
		return models.ErrDictionaryTypeTaken
	}
	s.logger.Warn("Dictionary name already taken", zap.String("name", name))
	return models.ErrDictionaryNameTaken
}

func (s *dictionaryServiceImpl) Create(ctx context.Context, dict *models.Dictionary) error {
	s.logger.Info("Creating dictionary", zap.String("type", dict.Type), zap.String("name", dict.Name))
	if err := s.checkCollision(ctx, dict.Type, dict.Name, nil); err != nil {
		return err
	}
	return s.repo.Create(ctx, dict)
}

func (s *dictionaryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Dictionary, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *dictionaryServiceImpl) List(ctx context.Context, filter models.DictionaryFilter) ([]models.Dictionary, int64, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *dictionaryServiceImpl) ListByType(ctx context.Context, dictType string) ([]models.Dictionary, error) {
	return s.repo.ListByType(ctx, dictType)
}

func (s *dictionaryServiceImpl) Update(ctx context.Context, id uuid.UUID, update models.DictionaryUpdate) (*models.Dictionary, error) {
	dict, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Type != nil {
		dict.Type = *update.Type
	}
	if update.Name != nil {
		dict.Name = *update.Name
	}
	if update.Description != nil {
		dict.Description = update.Description
	}
	if update.IsEnable != nil {
		dict.IsEnable = *update.IsEnable
	}
	if update.Sort != nil {
		dict.Sort = *update.Sort
	}
	if update.ParentID != nil {
		dict.ParentID = update.ParentID
	}

	if update.Type != nil || update.Name != nil {
		if err := s.checkCollision(ctx, dict.Type, dict.Name, &id); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, dict); err != nil {
		return nil, err
	}
	s.logger.Info("Dictionary updated", zap.String("id", id.String()))
	return dict, nil
}

func (s *dictionaryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Dictionary deleted", zap.String("id", id.String()))
	return nil
}

func (s *dictionaryServiceImpl) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, models.ErrEmptyBatch
	}
	affected, err := s.repo.SoftDeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Dictionaries deleted", zap.Int("requested", len(ids)), zap.Int64("affected", affected))
	return affected, nil
}
