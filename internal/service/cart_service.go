package service

import (
	"github.com/ipsum-store/internal/models"
	"github.com/ipsum-store/internal/repository"
)

// CartService 购物车业务服务
type CartService struct {
	repo repository.CartRepository
}

// NewCartService 创建购物车服务
func NewCartService(repo repository.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// CreateCartItemInput 创建购物车项输入
type CreateCartItemInput struct {
	UserID   *uint `json:"user_id"`
	OptionID *uint `json:"option_id"`
}

// PatchCartItemInput 部分更新购物车项输入
type PatchCartItemInput struct {
	UserID   Optional[uint] `json:"user_id"`
	OptionID Optional[uint] `json:"option_id"`
}

// List 购物车项列表
func (s *CartService) List() ([]models.CartItem, error) {
	return s.repo.List()
}

// GetByID 购物车项详情
func (s *CartService) GetByID(id uint) (*models.CartItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create 创建购物车项。同一 (user, option) 组合允许重复。
func (s *CartService) Create(input CreateCartItemInput) (*models.CartItem, error) {
	var missing []string
	if input.UserID == nil {
		missing = append(missing, "user_id")
	}
	if input.OptionID == nil {
		missing = append(missing, "option_id")
	}
	if err := newValidationError(missing); err != nil {
		return nil, err
	}

	item := models.CartItem{
		UserID:   *input.UserID,
		OptionID: *input.OptionID,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Patch 部分更新购物车项
func (s *CartService) Patch(id uint, input PatchCartItemInput) (*models.CartItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	if input.UserID.Set {
		item.UserID = input.UserID.Value
	}
	if input.OptionID.Set {
		item.OptionID = input.OptionID.Value
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除购物车项
func (s *CartService) Delete(id uint) error {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
