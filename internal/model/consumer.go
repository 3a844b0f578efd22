package model

import "time"

// Consumer 前台用户模型
// 索引与唯一约束：用户名唯一
// 说明：密码仅存储bcrypt哈希，序列化时一律隐藏
type Consumer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex;comment:用户名" json:"username"`
	Password     string    `gorm:"type:varchar(100);not null;comment:密码哈希" json:"-"`
	Email        string    `gorm:"type:varchar(100);comment:邮箱" json:"email"`
	Avatar       string    `gorm:"type:varchar(255);comment:头像路径" json:"avatar"`
	Nickname     string    `gorm:"type:varchar(64);comment:昵称" json:"nickname"`
	Introduction string    `gorm:"type:text;comment:个人简介" json:"introduction"`
	CreatedAt    time.Time `gorm:"comment:创建时间" json:"created_at"`
	UpdatedAt    time.Time `gorm:"comment:更新时间" json:"updated_at"`
}

func (Consumer) TableName() string { return "consumers" }
