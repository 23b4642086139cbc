package api

import (
	"github.com/ipsum-store/internal/http/response"
	"github.com/ipsum-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCartItems 购物车项列表
func (h *Handler) ListCartItems(c *gin.Context) {
	items, err := h.CartService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewCartItemViews(items))
}

// CreateCartItem 创建购物车项
func (h *Handler) CreateCartItem(c *gin.Context) {
	var input service.CreateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	item, err := h.CartService.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, NewCartItemView(item))
}

// GetCartItem 购物车项详情
func (h *Handler) GetCartItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.CartService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewCartItemView(item))
}

// PatchCartItem 部分更新购物车项
func (h *Handler) PatchCartItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.PatchCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	item, err := h.CartService.Patch(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewCartItemView(item))
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CartService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
