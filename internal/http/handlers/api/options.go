package api

import (
	"github.com/ipsum-store/internal/http/response"
	"github.com/ipsum-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProductOptions 规格列表
func (h *Handler) ListProductOptions(c *gin.Context) {
	options, err := h.ProductOptionService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewProductOptionViews(options))
}

// CreateProductOption 创建规格
func (h *Handler) CreateProductOption(c *gin.Context) {
	var input service.CreateProductOptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	option, err := h.ProductOptionService.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, NewProductOptionView(option))
}

// GetProductOption 规格详情
func (h *Handler) GetProductOption(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	option, err := h.ProductOptionService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewProductOptionView(option))
}

// PatchProductOption 部分更新规格
func (h *Handler) PatchProductOption(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.PatchProductOptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	option, err := h.ProductOptionService.Patch(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewProductOptionView(option))
}

// DeleteProductOption 删除规格
func (h *Handler) DeleteProductOption(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ProductOptionService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
