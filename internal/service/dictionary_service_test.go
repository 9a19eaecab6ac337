package service

import (
	"context"
	"testing"

	"blog-admin-server/internal/interfaces/mocks"
	"blog-admin-server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDictionaryService(repo *mocks.DictionaryRepository) DictionaryService {
	return NewDictionaryService(repo, zap.NewNop())
}

func TestDictionaryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mocks.DictionaryRepository)
		repo.On("FindByTypeOrName", ctx, "post_status", "文章状态", (*uuid.UUID)(nil)).
			Return(nil, models.ErrDictionaryNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Dictionary")).Return(nil)

		dict := &models.Dictionary{Type: "post_status", Name: "文章状态", IsEnable: true}
		err := newDictionaryService(repo).Create(ctx, dict)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("type already taken", func(t *testing.T) {
		repo := new(mocks.DictionaryRepository)
		repo.On("FindByTypeOrName", ctx, "post_status", "新名称", (*uuid.UUID)(nil)).
			Return(&models.Dictionary{Type: "post_status", Name: "旧名称"}, nil)

		err := newDictionaryService(repo).Create(ctx, &models.Dictionary{Type: "post_status", Name: "新名称"})

		assert.ErrorIs(t, err, models.ErrDictionaryTypeTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("name already taken", func(t *testing.T) {
		repo := new(mocks.DictionaryRepository)
		repo.On("FindByTypeOrName", ctx, "comment_status", "文章状态", (*uuid.UUID)(nil)).
			Return(&models.Dictionary{Type: "post_status", Name: "文章状态"}, nil)

		err := newDictionaryService(repo).Create(ctx, &models.Dictionary{Type: "comment_status", Name: "文章状态"})

		assert.ErrorIs(t, err, models.ErrDictionaryNameTaken)
	})

	t.Run("repository conflict passthrough", func(t *testing.T) {
		repo := new(mocks.DictionaryRepository)
		repo.On("FindByTypeOrName", ctx, "post_status", "文章状态", (*uuid.UUID)(nil)).
			Return(nil, models.ErrDictionaryNotFound)
		repo.On("Create", ctx, mock.Anything).Return(models.ErrDictionaryNameTaken)

		err := newDictionaryService(repo).Create(ctx, &models.Dictionary{Type: "post_status", Name: "文章状态"})

		assert.ErrorIs(t, err, models.ErrDictionaryNameTaken)
	})
}

func TestDictionaryService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		repo := new(mocks.DictionaryRepository)
		repo.On("GetByID", ctx, id).Return(&models.Dictionary{ID: id, Type: "post_status", Name: "文章状态", Sort: 3}, nil)
		repo.On("FindByTypeOrName", ctx, "post_status", "发布状态", &id).
			Return(nil, models.ErrDictionaryNotFound)
		repo.On("Update", ctx, mock.AnythingOfType("*models.Dictionary")).Return(nil)

		newName := "发布状态"
		dict, err := newDictionaryService(repo).Update(ctx, id, models.DictionaryUpdate{Name: &newName})

		require.NoError(t, err)
		assert.Equal(t, "发布状态", dict.Name)
		assert.Equal(t, "post_status", dict.Type)
		assert.Equal(t, 3, dict.Sort)
		repo.AssertExpectations(t)
	})

	t.Run("reparent stores the new parent id", func(t *testing.T) {
		repo := new(mocks.DictionaryRepository)
		repo.On("GetByID", ctx, id).Return(&models.Dictionary{ID: id, Type: "post_status", Name: "文章状态"}, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*models.Dictionary")).Return(nil)

		parentID := uuid.New()
		dict, err := newDictionaryService(repo).Update(ctx, id, models.DictionaryUpdate{ParentID: &parentID})

		require.NoError(t, err)
		require.NotNil(t, dict.ParentID)
		assert.Equal(t, parentID, *dict.ParentID)
		repo.AssertExpectations(t)
	})

	t.Run("collision excludes own row", func(t *testing.T) {
		repo := new(mocks.DictionaryRepository)
		repo.On("GetByID", ctx, id).Return(&models.Dictionary{ID: id, Type: "post_status", Name: "文章状态"}, nil)
		repo.On("FindByTypeOrName", ctx, "comment_status", "文章状态", &id).
			Return(&models.Dictionary{Type: "comment_status", Name: "评论状态"}, nil)

		newType := "comment_status"
		_, err := newDictionaryService(repo).Update(ctx, id, models.DictionaryUpdate{Type: &newType})

		assert.ErrorIs(t, err, models.ErrDictionaryTypeTaken)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.DictionaryRepository)
		repo.On("GetByID", ctx, id).Return(nil, models.ErrDictionaryNotFound)

		_, err := newDictionaryService(repo).Update(ctx, id, models.DictionaryUpdate{})

		assert.ErrorIs(t, err, models.ErrDictionaryNotFound)
	})
}

func TestDictionaryService_List_NormalizesPagination(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.DictionaryRepository)
	repo.On("List", ctx, mock.MatchedBy(func(f models.DictionaryFilter) bool {
		return f.Page == models.DefaultPage && f.PageSize == models.DefaultPageSize
	})).Return([]models.Dictionary{}, int64(0), nil)

	_, _, err := newDictionaryService(repo).List(ctx, models.DictionaryFilter{})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDictionaryService_DeleteMany(t *testing.T) {
	ctx := context.Background()

	t.Run("empty batch rejected", func(t *testing.T) {
		repo := new(mocks.DictionaryRepository)
		_, err := newDictionaryService(repo).DeleteMany(ctx, nil)
		assert.ErrorIs(t, err, models.ErrEmptyBatch)
	})

	t.Run("reports affected rows", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		repo := new(mocks.DictionaryRepository)
		repo.On("SoftDeleteMany", ctx, ids).Return(int64(2), nil)

		affected, err := newDictionaryService(repo).DeleteMany(ctx, ids)

		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)
	})
}
