package api

import "github.com/ipsum-store/internal/models"

// 本文件是各实体的序列化白名单：响应只投影这里列出的字段，
// password_hash 与时间戳列永远不出现在输出中。

// UserView 用户响应结构
type UserView struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	IsAdmin           bool   `json:"is_admin"`
	BillingAddressID  *uint  `json:"billing_address_id"`
	ShippingAddressID *uint  `json:"shipping_address_id"`
}

// NewUserView 投影单个用户
func NewUserView(user *models.User) UserView {
	return UserView{
		ID:                user.ID,
		Username:          user.Username,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		IsAdmin:           user.IsAdmin,
		BillingAddressID:  user.BillingAddressID,
		ShippingAddressID: user.ShippingAddressID,
	}
}

// NewUserViews 投影用户列表
func NewUserViews(users []models.User) []UserView {
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}
	return views
}

// AddressView 地址响应结构
type AddressView struct {
	ID         uint    `json:"id"`
	Address1   string  `json:"address_1"`
	Address2   *string `json:"address_2"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

// NewAddressView 投影单个地址
func NewAddressView(address *models.Address) AddressView {
	return AddressView{
		ID:         address.ID,
		Address1:   address.Address1,
		Address2:   address.Address2,
		City:       address.City,
		State:      address.State,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

// NewAddressViews 投影地址列表
func NewAddressViews(addresses []models.Address) []AddressView {
	views := make([]AddressView, 0, len(addresses))
	for i := range addresses {
		views = append(views, NewAddressView(&addresses[i]))
	}
	return views
}

// ProductView 商品响应结构
type ProductView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewProductView 投影单个商品
func NewProductView(product *models.Product) ProductView {
	return ProductView{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
	}
}

// NewProductViews 投影商品列表
func NewProductViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, NewProductView(&products[i]))
	}
	return views
}

// ProductOptionView 商品规格响应结构
type ProductOptionView struct {
	ID             uint         `json:"id"`
	ProductID      uint         `json:"product_id"`
	Color          string       `json:"color"`
	WholesalePrice models.Money `json:"wholesale_price"`
	RetailPrice    models.Money `json:"retail_price"`
	PercentOff     *int         `json:"percent_off"`
	ImageSource    string       `json:"image_source"`
}

// NewProductOptionView 投影单个规格
func NewProductOptionView(option *models.ProductOption) ProductOptionView {
	return ProductOptionView{
		ID:             option.ID,
		ProductID:      option.ProductID,
		Color:          option.Color,
		WholesalePrice: option.WholesalePrice,
		RetailPrice:    option.RetailPrice,
		PercentOff:     option.PercentOff,
		ImageSource:    option.ImageSource,
	}
}

// NewProductOptionViews 投影规格列表
func NewProductOptionViews(options []models.ProductOption) []ProductOptionView {
	views := make([]ProductOptionView, 0, len(options))
	for i := range options {
		views = append(views, NewProductOptionView(&options[i]))
	}
	return views
}

// CategoryView 分类响应结构
type CategoryView struct {
	ID        uint   `json:"id"`
	Gender    string `json:"gender"`
	Type      string `json:"type"`
	ProductID uint   `json:"product_id"`
}

// NewCategoryView 投影单个分类
func NewCategoryView(category *models.Category) CategoryView {
	return CategoryView{
		ID:        category.ID,
		Gender:    category.Gender,
		Type:      category.Type,
		ProductID: category.ProductID,
	}
}

// NewCategoryViews 投影分类列表
func NewCategoryViews(categories []models.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for i := range categories {
		views = append(views, NewCategoryView(&categories[i]))
	}
	return views
}

// CartItemView 购物车项响应结构
type CartItemView struct {
	ID       uint `json:"id"`
	UserID   uint `json:"user_id"`
	OptionID uint `json:"option_id"`
}

// NewCartItemView 投影单个购物车项
func NewCartItemView(item *models.CartItem) CartItemView {
	return CartItemView{
		ID:       item.ID,
		UserID:   item.UserID,
		OptionID: item.OptionID,
	}
}

// NewCartItemViews 投影购物车项列表
func NewCartItemViews(items []models.CartItem) []CartItemView {
	views := make([]CartItemView, 0, len(items))
	for i := range items {
		views = append(views, NewCartItemView(&items[i]))
	}
	return views
}
