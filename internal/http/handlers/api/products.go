package api

import (
	"github.com/ipsum-store/internal/http/response"
	"github.com/ipsum-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.ProductService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewProductViews(products))
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var input service.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.ProductService.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, NewProductView(product))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewProductView(product))
}

// PatchProduct 部分更新商品
func (h *Handler) PatchProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.PatchProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.ProductService.Patch(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewProductView(product))
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
