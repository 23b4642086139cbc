package repository

import (
	"errors"

	"github.com/ipsum-store/internal/models"

	"gorm.io/gorm"
)

// ProductOptionRepository 商品规格数据访问接口
type ProductOptionRepository interface {
	List() ([]models.ProductOption, error)
	GetByID(id uint) (*models.ProductOption, error)
	Create(option *models.ProductOption) error
	Update(option *models.ProductOption) error
	Delete(id uint) error
}

// GormProductOptionRepository GORM 实现
type GormProductOptionRepository struct {
	db *gorm.DB
}

// NewProductOptionRepository 创建商品规格仓库
func NewProductOptionRepository(db *gorm.DB) *GormProductOptionRepository {
	return &GormProductOptionRepository{db: db}
}

// List 规格列表
func (r *GormProductOptionRepository) List() ([]models.ProductOption, error) {
	var options []models.ProductOption
	if err := r.db.Order("id ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// GetByID 根据 ID 获取规格
func (r *GormProductOptionRepository) GetByID(id uint) (*models.ProductOption, error) {
	var option models.ProductOption
	if err := r.db.First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}

// Create 创建规格
func (r *GormProductOptionRepository) Create(option *models.ProductOption) error {
	return r.db.Create(option).Error
}

// Update 更新规格
func (r *GormProductOptionRepository) Update(option *models.ProductOption) error {
	return r.db.Save(option).Error
}

// Delete 删除规格
func (r *GormProductOptionRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProductOption{}, id).Error
}
