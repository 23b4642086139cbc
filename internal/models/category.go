package models

import "time"

// Category 商品分类表
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`          // 主键
	Gender    string    `gorm:"type:varchar(50)" json:"gender"` // 适用人群
	Type      string    `gorm:"type:varchar(50)" json:"type"`   // 分类类型
	ProductID uint      `gorm:"index" json:"product_id"`        // 商品ID（仅标识引用）
	CreatedAt time.Time `json:"-"`                              // 创建时间
	UpdatedAt time.Time `json:"-"`                              // 更新时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
