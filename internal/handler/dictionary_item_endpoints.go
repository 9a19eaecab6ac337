package handler

import (
	"errors"
	"net/http"

	"blog-admin-server/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateDictionaryItem handles POST /dictionary-item/create.
func (h *Handler) CreateDictionaryItem(c *gin.Context) {
	var req CreateDictionaryItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item := &models.DictionaryItem{
		DictionaryID: req.DictionaryID,
		Name:         req.Name,
		Value:        *req.Value,
		Description:  req.Description,
		IsEnable:     true,
	}
	if req.IsEnable != nil {
		item.IsEnable = *req.IsEnable
	}
	if req.Sort != nil {
		item.Sort = *req.Sort
	}

	if err := h.items.Create(c.Request.Context(), item); err != nil {
		if errors.Is(err, models.ErrDictionaryNotFound) {
			respondError(c, http.StatusNotFound, "父级字典不存在")
			return
		}
		h.handleServiceError(c, err)
		return
	}
	respondCreated(c, item, "字典项创建成功")
}

// ListDictionaryItems handles GET /dictionary-item/list.
func (h *Handler) ListDictionaryItems(c *gin.Context) {
	var query DictionaryItemListQuery
	if !bindQuery(c, &query) {
		return
	}

	filter := models.DictionaryItemFilter{
		DictionaryID: query.DictionaryID,
		Keyword:      query.Keyword,
		IsEnable:     query.IsEnable,
		PageQuery: models.PageQuery{
			Page:     query.Page,
			PageSize: query.Size(),
		},
	}
	items, total, err := h.items.List(c.Request.Context(), filter)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondPage(c, items, total, "")
}

// ListItemsByDictionary handles GET /dictionary-item/dictionary/:dictionaryId.
func (h *Handler) ListItemsByDictionary(c *gin.Context) {
	dictionaryID, ok := parseIDParam(c, "dictionaryId")
	if !ok {
		return
	}
	items, err := h.items.ListByDictionaryID(c.Request.Context(), dictionaryID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, items, "")
}

// NextItemValue handles GET /dictionary-item/next-value/:dictionaryId.
func (h *Handler) NextItemValue(c *gin.Context) {
	dictionaryID, ok := parseIDParam(c, "dictionaryId")
	if !ok {
		return
	}
	next, err := h.items.NextValue(c.Request.Context(), dictionaryID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, gin.H{"nextValue": next}, "")
}

// GetDictionaryItem handles GET /dictionary-item/:id.
func (h *Handler) GetDictionaryItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.items.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, item, "")
}

// UpdateDictionaryItem handles PATCH /dictionary-item/:id.
func (h *Handler) UpdateDictionaryItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateDictionaryItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.items.Update(c.Request.Context(), id, models.DictionaryItemUpdate{
		DictionaryID: req.DictionaryID,
		Name:         req.Name,
		Value:        req.Value,
		Description:  req.Description,
		IsEnable:     req.IsEnable,
		Sort:         req.Sort,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, item, "字典项更新成功")
}

// DeleteDictionaryItem handles DELETE /dictionary-item/:id.
func (h *Handler) DeleteDictionaryItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.items.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, nil, "字典项删除成功")
}

// BatchDeleteDictionaryItems handles DELETE /dictionary-item/batch/remove.
func (h *Handler) BatchDeleteDictionaryItems(c *gin.Context) {
	var req BatchRemoveRequest
	if !bindJSON(c, &req) {
		return
	}
	affected, err := h.items.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, gin.H{"deleted": affected}, "字典项批量删除成功")
}
