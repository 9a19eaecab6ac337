package handler

import (
	"blog-admin-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateDictionary handles POST /dictionary/create.
func (h *Handler) CreateDictionary(c *gin.Context) {
	var req CreateDictionaryRequest
	if !bindJSON(c, &req) {
		return
	}

	dict := &models.Dictionary{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		IsEnable:    true,
		ParentID:    req.ParentID,
	}
	if req.IsEnable != nil {
		dict.IsEnable = *req.IsEnable
	}
	if req.Sort != nil {
		dict.Sort = *req.Sort
	}

	if err := h.dictionaries.Create(c.Request.Context(), dict); err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondCreated(c, dict, "字典创建成功")
}

// ListDictionaries handles GET /dictionary/list.
func (h *Handler) ListDictionaries(c *gin.Context) {
	var query DictionaryListQuery
	if !bindQuery(c, &query) {
		return
	}

	filter := models.DictionaryFilter{
		Type:     query.Type,
		Keyword:  query.Keyword,
		IsEnable: query.IsEnable,
		PageQuery: models.PageQuery{
			Page:     query.Page,
			PageSize: query.Size(),
		},
	}
	dicts, total, err := h.dictionaries.List(c.Request.Context(), filter)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondPage(c, dicts, total, "")
}

// ListDictionariesByType handles GET /dictionary/type/:type.
func (h *Handler) ListDictionariesByType(c *gin.Context) {
	dicts, err := h.dictionaries.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, dicts, "")
}

// GetDictionary handles GET /dictionary/:id.
func (h *Handler) GetDictionary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	dict, err := h.dictionaries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, dict, "")
}

// UpdateDictionary handles PATCH /dictionary/:id.
func (h *Handler) UpdateDictionary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateDictionaryRequest
	if !bindJSON(c, &req) {
		return
	}

	dict, err := h.dictionaries.Update(c.Request.Context(), id, models.DictionaryUpdate{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		IsEnable:    req.IsEnable,
		Sort:        req.Sort,
		ParentID:    req.ParentID,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, dict, "字典更新成功")
}

// DeleteDictionary handles DELETE /dictionary/:id.
func (h *Handler) DeleteDictionary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.dictionaries.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, nil, "字典删除成功")
}

// BatchDeleteDictionaries handles DELETE /dictionary/batch/remove.
func (h *Handler) BatchDeleteDictionaries(c *gin.Context) {
	var req BatchRemoveRequest
	if !bindJSON(c, &req) {
		return
	}
	affected, err := h.dictionaries.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.logger.Info("Batch deleted dictionaries", zap.Int64("affected", affected))
	respondSuccess(c, gin.H{"deleted": affected}, "字典批量删除成功")
}
