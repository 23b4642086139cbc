package service

import (
	"github.com/ipsum-store/internal/models"
	"github.com/ipsum-store/internal/repository"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// PatchProductInput 部分更新商品输入
type PatchProductInput struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
}

// List 商品列表
func (s *ProductService) List() ([]models.Product, error) {
	return s.repo.List()
}

// GetByID 商品详情
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	var missing []string
	if input.Name == nil {
		missing = append(missing, "name")
	}
	if input.Description == nil {
		missing = append(missing, "description")
	}
	if err := newValidationError(missing); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:        *input.Name,
		Description: *input.Description,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Patch 部分更新商品
func (s *ProductService) Patch(id uint, input PatchProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	if input.Name.Set {
		product.Name = input.Name.Value
	}
	if input.Description.Set {
		product.Description = input.Description.Value
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品。规格/分类/购物车中的引用保持原样（不级联）。
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
