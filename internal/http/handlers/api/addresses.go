package api

import (
	"github.com/ipsum-store/internal/http/response"
	"github.com/ipsum-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListAddresses 地址列表
func (h *Handler) ListAddresses(c *gin.Context) {
	addresses, err := h.AddressService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewAddressViews(addresses))
}

// CreateAddress 创建地址
func (h *Handler) CreateAddress(c *gin.Context) {
	var input service.CreateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	address, err := h.AddressService.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, NewAddressView(address))
}

// GetAddress 地址详情
func (h *Handler) GetAddress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	address, err := h.AddressService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewAddressView(address))
}

// PatchAddress 部分更新地址
func (h *Handler) PatchAddress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.PatchAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	address, err := h.AddressService.Patch(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, NewAddressView(address))
}

// DeleteAddress 删除地址
func (h *Handler) DeleteAddress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.AddressService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
