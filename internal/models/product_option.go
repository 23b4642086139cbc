package models

import "time"

// ProductOption 商品规格表（颜色/价格维度）
type ProductOption struct {
	ID             uint      `gorm:"primarykey" json:"id"`                                        // 主键
	ProductID      uint      `gorm:"index" json:"product_id"`                                     // 商品ID（仅标识引用）
	Color          string    `gorm:"type:varchar(50)" json:"color"`                               // 颜色
	WholesalePrice Money     `gorm:"type:decimal(13,2);not null;default:0" json:"wholesale_price"` // 批发价
	RetailPrice    Money     `gorm:"type:decimal(13,2);not null;default:0" json:"retail_price"`    // 零售价
	PercentOff     *int      `json:"percent_off"`                                                 // 折扣百分比（可空）
	ImageSource    string    `gorm:"type:varchar(255)" json:"image_source"`                       // 图片地址
	CreatedAt      time.Time `json:"-"`                                                           // 创建时间
	UpdatedAt      time.Time `json:"-"`                                                           // 更新时间
}

// TableName 指定表名
func (ProductOption) TableName() string {
	return "product_options"
}
