package service

import (
	"github.com/ipsum-store/internal/models"
	"github.com/ipsum-store/internal/repository"
)

// ProductOptionService 商品规格业务服务
type ProductOptionService struct {
	repo repository.ProductOptionRepository
}

// NewProductOptionService 创建商品规格服务
func NewProductOptionService(repo repository.ProductOptionRepository) *ProductOptionService {
	return &ProductOptionService{repo: repo}
}

// CreateProductOptionInput 创建规格输入
type CreateProductOptionInput struct {
	ProductID      *uint         `json:"product_id"`
	Color          *string       `json:"color"`
	WholesalePrice *models.Money `json:"wholesale_price"`
	RetailPrice    *models.Money `json:"retail_price"`
	PercentOff     *int          `json:"percent_off"`
	ImageSource    *string       `json:"image_source"`
}

// PatchProductOptionInput 部分更新规格输入
type PatchProductOptionInput struct {
	ProductID      Optional[uint]         `json:"product_id"`
	Color          Optional[string]       `json:"color"`
	WholesalePrice Optional[models.Money] `json:"wholesale_price"`
	RetailPrice    Optional[models.Money] `json:"retail_price"`
	PercentOff     Optional[*int]         `json:"percent_off"`
	ImageSource    Optional[string]       `json:"image_source"`
}

// List 规格列表
func (s *ProductOptionService) List() ([]models.ProductOption, error) {
	return s.repo.List()
}

// GetByID 规格详情
func (s *ProductOptionService) GetByID(id uint) (*models.ProductOption, error) {
	option, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, ErrNotFound
	}
	return option, nil
}

// Create 创建规格。product_id 只做标识引用，不在应用层校验存在性。
func (s *ProductOptionService) Create(input CreateProductOptionInput) (*models.ProductOption, error) {
	var missing []string
	if input.ProductID == nil {
		missing = append(missing, "product_id")
	}
	if input.Color == nil {
		missing = append(missing, "color")
	}
	if input.WholesalePrice == nil {
		missing = append(missing, "wholesale_price")
	}
	if input.RetailPrice == nil {
		missing = append(missing, "retail_price")
	}
	if err := newValidationError(missing); err != nil {
		return nil, err
	}

	option := models.ProductOption{
		ProductID:      *input.ProductID,
		Color:          *input.Color,
		WholesalePrice: *input.WholesalePrice,
		RetailPrice:    *input.RetailPrice,
		PercentOff:     input.PercentOff,
	}
	if input.ImageSource != nil {
		option.ImageSource = *input.ImageSource
	}
	if err := s.repo.Create(&option); err != nil {
		return nil, err
	}
	return &option, nil
}

// Patch 部分更新规格
func (s *ProductOptionService) Patch(id uint, input PatchProductOptionInput) (*models.ProductOption, error) {
	option, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, ErrNotFound
	}

	if input.ProductID.Set {
		option.ProductID = input.ProductID.Value
	}
	if input.Color.Set {
		option.Color = input.Color.Value
	}
	if input.WholesalePrice.Set {
		option.WholesalePrice = input.WholesalePrice.Value
	}
	if input.RetailPrice.Set {
		option.RetailPrice = input.RetailPrice.Value
	}
	if input.PercentOff.Set {
		option.PercentOff = input.PercentOff.Value
	}
	if input.ImageSource.Set {
		option.ImageSource = input.ImageSource.Value
	}

	if err := s.repo.Update(option); err != nil {
		return nil, err
	}
	return option, nil
}

// Delete 删除规格
func (s *ProductOptionService) Delete(id uint) error {
	option, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if option == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
