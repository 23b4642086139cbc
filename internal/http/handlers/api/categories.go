package api

import (
	"github.com/ipsum-store/internal/http/response"
	"github.com/ipsum-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewCategoryViews(categories))
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var input service.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := h.CategoryService.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, NewCategoryView(category))
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	category, err := h.CategoryService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewCategoryView(category))
}

// PatchCategory 部分更新分类
func (h *Handler) PatchCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.PatchCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := h.CategoryService.Patch(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewCategoryView(category))
}

// DeleteCategory 删除分类
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
