package models

import "time"

// User 用户表（会员）
type User struct {
	ID                uint      `gorm:"primarykey" json:"id"`                 // 主键
	Username          string    `gorm:"uniqueIndex;not null" json:"username"` // 登录名
	FirstName         string    `gorm:"type:varchar(50)" json:"first_name"`   // 名
	LastName          string    `gorm:"type:varchar(50)" json:"last_name"`    // 姓
	IsAdmin           bool      `gorm:"default:false" json:"is_admin"`        // 是否管理员
	PasswordHash      string    `gorm:"not null" json:"-"`                    // 密码哈希（不返回给前端）
	BillingAddressID  *uint     `json:"billing_address_id"`                   // 账单地址ID（仅标识引用）
	ShippingAddressID *uint     `json:"shipping_address_id"`                  // 收货地址ID（仅标识引用）
	CreatedAt         time.Time `json:"-"`                                    // 创建时间
	UpdatedAt         time.Time `json:"-"`                                    // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
