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

// DictionaryItemService manages the entries inside dictionaries.
type DictionaryItemService interface {
	Create(ctx context.Context, item *models.DictionaryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DictionaryItem, error)
	List(ctx context.Context, filter models.DictionaryItemFilter) ([]models.DictionaryItem, int64, error)
	ListByDictionaryID(ctx context.Context, dictionaryID uuid.UUID) ([]models.DictionaryItem, error)
	// NextValue suggests the next free enum value in a dictionary: highest
	// live value plus one, or zero for an empty dictionary.
	NextValue(ctx context.Context, dictionaryID uuid.UUID) (int, error)
	Update(ctx context.Context, id uuid.UUID, update models.DictionaryItemUpdate) (*models.DictionaryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// Compile-time check to ensure dictionaryItemServiceImpl implements DictionaryItemService
var _ DictionaryItemService = (*dictionaryItemServiceImpl)(nil)

type dictionaryItemServiceImpl struct {
	itemRepo interfaces.DictionaryItemRepository
	dictRepo interfaces.DictionaryRepository
	logger   *zap.Logger
}

// NewDictionaryItemService creates a new DictionaryItemService.
func NewDictionaryItemService(itemRepo interfaces.DictionaryItemRepository, dictRepo interfaces.DictionaryRepository, logger *zap.Logger) DictionaryItemService {
	return &dictionaryItemServiceImpl{
		itemRepo: itemRepo,
		dictRepo: dictRepo,
		logger:   logger.Named("DictionaryItemService"),
	}
}

func (s *dictionaryItemServiceImpl) requireDictionary(ctx context.Context, dictionaryID uuid.UUID) error {
	if _, err := s.dictRepo.GetByID(ctx, dictionaryID); err != nil {
		if errors.Is(err, models.ErrDictionaryNotFound) {
			s.logger.Warn("Parent dictionary does not exist", zap.String("dictionaryID", dictionaryID.String()))
			return models.ErrDictionaryNotFound
		}
		return fmt.Errorf("failed to check parent dictionary: %w", err)
	}
	return nil
}

// checkCollision pre-checks name and value uniqueness inside one dictionary.
func (s *dictionaryItemServiceImpl) checkCollision(ctx context.Context, dictionaryID uuid.UUID, name string, value int, excludeID *uuid.UUID) error {
	if _, err := s.itemRepo.FindByName(ctx, dictionaryID, name, excludeID); err == nil {
		s.logger.Warn("Dictionary item name already taken",
			zap.String("dictionaryID", dictionaryID.String()), zap.String("name", name))
		return models.ErrItemNameTaken
	} else if !errors.Is(err, models.ErrDictionaryItemNotFound) {
		return fmt.Errorf("failed to check item name uniqueness: %w", err)
	}

	if _, err := s.itemRepo.FindByValue(ctx, dictionaryID, value, excludeID); err == nil {
		s.logger.Warn("Dictionary item value already taken",
			zap.String("dictionaryID", dictionaryID.String()), zap.Int("value", value))
		return models.ErrItemValueTaken
	} else if !errors.Is(err, models.ErrDictionaryItemNotFound) {
		return fmt.Errorf("failed to check item value uniqueness: %w", err)
	}
	return nil
}

func (s *dictionaryItemServiceImpl) Create(ctx context.Context, item *models.DictionaryItem) error {
	s.logger.Info("Creating dictionary item",
		zap.String("dictionaryID", item.DictionaryID.String()), zap.String("name", item.Name), zap.Int("value", item.Value))
	if err := s.requireDictionary(ctx, item.DictionaryID); err != nil {
		return err
	}
	if err := s.checkCollision(ctx, item.DictionaryID, item.Name, item.Value, nil); err != nil {
		return err
	}
	return s.itemRepo.Create(ctx, item)
}

func (s *dictionaryItemServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.DictionaryItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *dictionaryItemServiceImpl) List(ctx context.Context, filter models.DictionaryItemFilter) ([]models.DictionaryItem, int64, error) {
	filter.Normalize()
	return s.itemRepo.List(ctx, filter)
}

func (s *dictionaryItemServiceImpl) ListByDictionaryID(ctx context.Context, dictionaryID uuid.UUID) ([]models.DictionaryItem, error) {
	if err := s.requireDictionary(ctx, dictionaryID); err != nil {
		return nil, err
	}
	return s.itemRepo.ListByDictionaryID(ctx, dictionaryID)
}

func (s *dictionaryItemServiceImpl) NextValue(ctx context.Context, dictionaryID uuid.UUID) (int, error) {
	if err := s.requireDictionary(ctx, dictionaryID); err != nil {
		return 0, err
	}
	max, ok, err := s.itemRepo.MaxValue(ctx, dictionaryID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return max + 1, nil
}

func (s *dictionaryItemServiceImpl) Update(ctx context.Context, id uuid.UUID, update models.DictionaryItemUpdate) (*models.DictionaryItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.DictionaryID != nil && *update.DictionaryID != item.DictionaryID {
		if err := s.requireDictionary(ctx, *update.DictionaryID); err != nil {
			return nil, err
		}
		item.DictionaryID = *update.DictionaryID
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Value != nil {
		item.Value = *update.Value
	}
	if update.Description != nil {
		item.Description = update.Description
	}
	if update.IsEnable != nil {
		item.IsEnable = *update.IsEnable
	}
	if update.Sort != nil {
		item.Sort = *update.Sort
	}

	if update.DictionaryID != nil || update.Name != nil || update.Value != nil {
		if err := s.checkCollision(ctx, item.DictionaryID, item.Name, item.Value, &id); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Info("Dictionary item updated", zap.String("id", id.String()))
	return item, nil
}

func (s *dictionaryItemServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.itemRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Dictionary item deleted", zap.String("id", id.String()))
	return nil
}

func (s *dictionaryItemServiceImpl) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, models.ErrEmptyBatch
	}
	affected, err := s.itemRepo.SoftDeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Dictionary items deleted", zap.Int("requested", len(ids)), zap.Int64("affected", affected))
	return affected, nil
}
