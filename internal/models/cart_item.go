package models

import "time"

// CartItem 购物车项。(user, option) 不做唯一约束，允许重复行。
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`    // 主键
	UserID    uint      `gorm:"index" json:"user_id"`    // 用户ID（仅标识引用）
	OptionID  uint      `gorm:"index" json:"option_id"`  // 商品规格ID（仅标识引用）
	CreatedAt time.Time `json:"-"`                       // 创建时间
	UpdatedAt time.Time `json:"-"`                       // 更新时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
