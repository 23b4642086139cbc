package service

import (
	"github.com/ipsum-store/internal/models"
	"github.com/ipsum-store/internal/repository"
)

// UserService 用户业务服务
type UserService struct {
	repo repository.UserRepository
	auth *AuthService
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{repo: repo, auth: auth}
}

// CreateUserInput 创建用户输入。指针为 nil 表示请求体缺少该字段。
type CreateUserInput struct {
	Username          *string `json:"username"`
	Password          *string `json:"password"`
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	IsAdmin           *bool   `json:"is_admin"`
	BillingAddressID  *uint   `json:"billing_address_id"`
	ShippingAddressID *uint   `json:"shipping_address_id"`
}

// PatchUserInput 部分更新用户输入
type PatchUserInput struct {
	Username          Optional[string] `json:"username"`
	Password          Optional[string] `json:"password"`
	FirstName         Optional[string] `json:"first_name"`
	LastName          Optional[string] `json:"last_name"`
	IsAdmin           Optional[bool]   `json:"is_admin"`
	BillingAddressID  Optional[*uint]  `json:"billing_address_id"`
	ShippingAddressID Optional[*uint]  `json:"shipping_address_id"`
}

// List 用户列表
func (s *UserService) List() ([]models.User, error) {
	return s.repo.List()
}

// GetByID 用户详情
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Create 创建用户。登录名唯一，密码落库前哈希。
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	var missing []string
	if input.Username == nil || *input.Username == "" {
		missing = append(missing, "username")
	}
	if input.Password == nil || *input.Password == "" {
		missing = append(missing, "password")
	}
	if input.FirstName == nil {
		missing = append(missing, "first_name")
	}
	if input.LastName == nil {
		missing = append(missing, "last_name")
	}
	if err := newValidationError(missing); err != nil {
		return nil, err
	}

	if err := s.auth.ValidatePassword(*input.Password); err != nil {
		return nil, err
	}

	count, err := s.repo.CountByUsername(*input.Username, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameExists
	}

	hash, err := s.auth.HashPassword(*input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:          *input.Username,
		FirstName:         *input.FirstName,
		LastName:          *input.LastName,
		PasswordHash:      hash,
		BillingAddressID:  input.BillingAddressID,
		ShippingAddressID: input.ShippingAddressID,
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	if err := s.repo.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Patch 部分更新用户。请求体缺省的字段保持原值。
func (s *UserService) Patch(id uint, input PatchUserInput) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if input.Username.Set && input.Username.Value != user.Username {
		count, err := s.repo.CountByUsername(input.Username.Value, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrUsernameExists
		}
		user.Username = input.Username.Value
	}
	if input.Password.Set {
		if err := s.auth.ValidatePassword(input.Password.Value); err != nil {
			return nil, err
		}
		hash, err := s.auth.HashPassword(input.Password.Value)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.FirstName.Set {
		user.FirstName = input.FirstName.Value
	}
	if input.LastName.Set {
		user.LastName = input.LastName.Value
	}
	if input.IsAdmin.Set {
		user.IsAdmin = input.IsAdmin.Value
	}
	if input.BillingAddressID.Set {
		user.BillingAddressID = input.BillingAddressID.Value
	}
	if input.ShippingAddressID.Set {
		user.ShippingAddressID = input.ShippingAddressID.Value
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 删除用户。硬删除，不级联。
func (s *UserService) Delete(id uint) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
