package interfaces

import (
	"context"
	"time"

	"blog-admin-server/internal/models"

	"github.com/google/uuid"
)

// DictionaryRepository persists dictionary groups.
type DictionaryRepository interface {
	Create(ctx context.Context, dict *models.Dictionary) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dictionary, error)
	// FindByTypeOrName returns a live row whose type or name collides with the
	// given pair, excluding excludeID when non-nil. Returns ErrDictionaryNotFound
	// when nothing collides.
	FindByTypeOrName(ctx context.Context, dictType, name string, excludeID *uuid.UUID) (*models.Dictionary, error)
	List(ctx context.Context, filter models.DictionaryFilter) ([]models.Dictionary, int64, error)
	ListByType(ctx context.Context, dictType string) ([]models.Dictionary, error)
	Update(ctx context.Context, dict *models.Dictionary) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// DictionaryItemRepository persists dictionary entries.
type DictionaryItemRepository interface {
	Create(ctx context.Context, item *models.DictionaryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DictionaryItem, error)
	FindByName(ctx context.Context, dictionaryID uuid.UUID, name string, excludeID *uuid.UUID) (*models.DictionaryItem, error)
	FindByValue(ctx context.Context, dictionaryID uuid.UUID, value int, excludeID *uuid.UUID) (*models.DictionaryItem, error)
	List(ctx context.Context, filter models.DictionaryItemFilter) ([]models.DictionaryItem, int64, error)
	ListByDictionaryID(ctx context.Context, dictionaryID uuid.UUID) ([]models.DictionaryItem, error)
	// MaxValue returns the highest live enum value in the dictionary and false
	// when the dictionary has no live items.
	MaxValue(ctx context.Context, dictionaryID uuid.UUID) (int, bool, error)
	Update(ctx context.Context, item *models.DictionaryItem) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// UserRepository persists blog accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// AccessLogRepository persists request access logs.
type AccessLogRepository interface {
	Create(ctx context.Context, entry *models.AccessLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AccessLog, error)
	List(ctx context.Context, filter models.AccessLogFilter) ([]models.AccessLog, int64, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountDistinctIPs(ctx context.Context) (int64, error)
}
