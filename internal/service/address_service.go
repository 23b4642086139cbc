package service

import (
	"github.com/ipsum-store/internal/models"
	"github.com/ipsum-store/internal/repository"
)

// AddressService 地址业务服务
type AddressService struct {
	repo repository.AddressRepository
}

// NewAddressService 创建地址服务
func NewAddressService(repo repository.AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

// CreateAddressInput 创建地址输入。address_2 可空，其余必填。
type CreateAddressInput struct {
	Address1   *string `json:"address_1"`
	Address2   *string `json:"address_2"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
}

// PatchAddressInput 部分更新地址输入
type PatchAddressInput struct {
	Address1   Optional[string]  `json:"address_1"`
	Address2   Optional[*string] `json:"address_2"`
	City       Optional[string]  `json:"city"`
	State      Optional[string]  `json:"state"`
	Country    Optional[string]  `json:"country"`
	PostalCode Optional[string]  `json:"postal_code"`
}

// List 地址列表
func (s *AddressService) List() ([]models.Address, error) {
	return s.repo.List()
}

// GetByID 地址详情
func (s *AddressService) GetByID(id uint) (*models.Address, error) {
	address, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrNotFound
	}
	return address, nil
}

// Create 创建地址
func (s *AddressService) Create(input CreateAddressInput) (*models.Address, error) {
	var missing []string
	if input.Address1 == nil {
		missing = append(missing, "address_1")
	}
	if input.City == nil {
		missing = append(missing, "city")
	}
	if input.State == nil {
		missing = append(missing, "state")
	}
	if input.Country == nil {
		missing = append(missing, "country")
	}
	if input.PostalCode == nil {
		missing = append(missing, "postal_code")
	}
	if err := newValidationError(missing); err != nil {
		return nil, err
	}

	address := models.Address{
		Address1:   *input.Address1,
		Address2:   input.Address2,
		City:       *input.City,
		State:      *input.State,
		Country:    *input.Country,
		PostalCode: *input.PostalCode,
	}
	if err := s.repo.Create(&address); err != nil {
		return nil, err
	}
	return &address, nil
}

// Patch 部分更新地址
func (s *AddressService) Patch(id uint, input PatchAddressInput) (*models.Address, error) {
	address, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrNotFound
	}

	if input.Address1.Set {
		address.Address1 = input.Address1.Value
	}
	if input.Address2.Set {
		address.Address2 = input.Address2.Value
	}
	if input.City.Set {
		address.City = input.City.Value
	}
	if input.State.Set {
		address.State = input.State.Value
	}
	if input.Country.Set {
		address.Country = input.Country.Value
	}
	if input.PostalCode.Set {
		address.PostalCode = input.PostalCode.Value
	}

	if err := s.repo.Update(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Delete 删除地址。引用该地址的用户行不受影响。
func (s *AddressService) Delete(id uint) error {
	address, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if address == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
