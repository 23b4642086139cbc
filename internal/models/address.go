package models

import "time"

// Address 地址表
type Address struct {
	ID         uint      `gorm:"primarykey" json:"id"`                          // 主键
	Address1   string    `gorm:"column:address_1;not null" json:"address_1"`    // 地址行1
	Address2   *string   `gorm:"column:address_2" json:"address_2"`             // 地址行2（可空）
	City       string    `gorm:"not null" json:"city"`                          // 城市
	State      string    `gorm:"not null" json:"state"`                         // 州/省
	Country    string    `gorm:"not null" json:"country"`                       // 国家
	PostalCode string    `gorm:"column:postal_code;not null" json:"postal_code"` // 邮编
	CreatedAt  time.Time `json:"-"`                                             // 创建时间
	UpdatedAt  time.Time `json:"-"`                                             // 更新时间
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}
