package mocks

import (
	"context"
	"time"

	"blog-admin-server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock DictionaryRepository
type DictionaryRepository struct {
	mock.Mock
}

func (m *DictionaryRepository) Create(ctx context.Context, dict *models.Dictionary) error {
	args := m.Called(ctx, dict)
	return args.Error(0)
}
func (m *DictionaryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Dictionary, error) {
	args := m.Called(ctx, id)
	dict, _ := args.Get(0).(*models.Dictionary)
	return dict, args.Error(1)
}
func (m *DictionaryRepository) FindByTypeOrName(ctx context.Context, dictType, name string, excludeID *uuid.UUID) (*models.Dictionary, error) {
	args := m.Called(ctx, dictType, name, excludeID)
	dict, _ := args.Get(0).(*models.Dictionary)
	return dict, args.Error(1)
}
func (m *DictionaryRepository) List(ctx context.Context, filter models.DictionaryFilter) ([]models.Dictionary, int64, error) {
	args := m.Called(ctx, filter)
	dicts, _ := args.Get(0).([]models.Dictionary)
	return dicts, args.Get(1).(int64), args.Error(2)
}
func (m *DictionaryRepository) ListByType(ctx context.Context, dictType string) ([]models.Dictionary, error) {
	args := m.Called(ctx, dictType)
	dicts, _ := args.Get(0).([]models.Dictionary)
	return dicts, args.Error(1)
}
func (m *DictionaryRepository) Update(ctx context.Context, dict *models.Dictionary) error {
	args := m.Called(ctx, dict)
	return args.Error(0)
}
func (m *DictionaryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *DictionaryRepository) SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// Mock DictionaryItemRepository
type DictionaryItemRepository struct {
	mock.Mock
}

func (m *DictionaryItemRepository) Create(ctx context.Context, item *models.DictionaryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *DictionaryItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DictionaryItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.DictionaryItem)
	return item, args.Error(1)
}
func (m *DictionaryItemRepository) FindByName(ctx context.Context, dictionaryID uuid.UUID, name string, excludeID *uuid.UUID) (*models.DictionaryItem, error) {
	args := m.Called(ctx, dictionaryID, name, excludeID)
	item, _ := args.Get(0).(*models.DictionaryItem)
	return item, args.Error(1)
}
func (m *DictionaryItemRepository) FindByValue(ctx context.Context, dictionaryID uuid.UUID, value int, excludeID *uuid.UUID) (*models.DictionaryItem, error) {
	args := m.Called(ctx, dictionaryID, value, excludeID)
	item, _ := args.Get(0).(*models.DictionaryItem)
	return item, args.Error(1)
}
func (m *DictionaryItemRepository) List(ctx context.Context, filter models.DictionaryItemFilter) ([]models.DictionaryItem, int64, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]models.DictionaryItem)
	return items, args.Get(1).(int64), args.Error(2)
}
func (m *DictionaryItemRepository) ListByDictionaryID(ctx context.Context, dictionaryID uuid.UUID) ([]models.DictionaryItem, error) {
	args := m.Called(ctx, dictionaryID)
	items, _ := args.Get(0).([]models.DictionaryItem)
	return items, args.Error(1)
}
func (m *DictionaryItemRepository) MaxValue(ctx context.Context, dictionaryID uuid.UUID) (int, bool, error) {
	args := m.Called(ctx, dictionaryID)
	return args.Int(0), args.Bool(1), args.Error(2)
}
func (m *DictionaryItemRepository) Update(ctx context.Context, item *models.DictionaryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *DictionaryItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *DictionaryItemRepository) SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// Mock UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
func (m *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// Mock AccessLogRepository
type AccessLogRepository struct {
	mock.Mock
}

func (m *AccessLogRepository) Create(ctx context.Context, entry *models.AccessLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *AccessLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AccessLog, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*models.AccessLog)
	return entry, args.Error(1)
}
func (m *AccessLogRepository) List(ctx context.Context, filter models.AccessLogFilter) ([]models.AccessLog, int64, error) {
	args := m.Called(ctx, filter)
	entries, _ := args.Get(0).([]models.AccessLog)
	return entries, args.Get(1).(int64), args.Error(2)
}
func (m *AccessLogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *AccessLogRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}
func (m *AccessLogRepository) CountDistinctIPs(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
