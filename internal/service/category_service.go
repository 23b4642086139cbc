package service

import (
	"github.com/ipsum-store/internal/models"
	"github.com/ipsum-store/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CreateCategoryInput 创建分类输入
type CreateCategoryInput struct {
	Gender    *string `json:"gender"`
	Type      *string `json:"type"`
	ProductID *uint   `json:"product_id"`
}

// PatchCategoryInput 部分更新分类输入
type PatchCategoryInput struct {
	Gender    Optional[string] `json:"gender"`
	Type      Optional[string] `json:"type"`
	ProductID Optional[uint]   `json:"product_id"`
}

// List 分类列表
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

// GetByID 分类详情
func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	var missing []string
	if input.Gender == nil {
		missing = append(missing, "gender")
	}
	if input.Type == nil {
		missing = append(missing, "type")
	}
	if input.ProductID == nil {
		missing = append(missing, "product_id")
	}
	if err := newValidationError(missing); err != nil {
		return nil, err
	}

	category := models.Category{
		Gender:    *input.Gender,
		Type:      *input.Type,
		ProductID: *input.ProductID,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Patch 部分更新分类
func (s *CategoryService) Patch(id uint, input PatchCategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	if input.Gender.Set {
		category.Gender = input.Gender.Value
	}
	if input.Type.Set {
		category.Type = input.Type.Value
	}
	if input.ProductID.Set {
		category.ProductID = input.ProductID.Value
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
