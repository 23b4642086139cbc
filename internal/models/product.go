package models

import "time"

// Product 商品表
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`             // 主键
	Name        string    `gorm:"type:varchar(50)" json:"name"`     // 商品名
	Description string    `gorm:"type:text" json:"description"`     // 描述
	CreatedAt   time.Time `json:"-"`                                // 创建时间
	UpdatedAt   time.Time `json:"-"`                                // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
