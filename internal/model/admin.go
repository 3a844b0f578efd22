package model

import "time"

// Admin 后台管理员模型
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);not null;uniqueIndex;comment:用户名" json:"username"`
	Password  string    `gorm:"type:varchar(100);not null;comment:密码哈希" json:"-"`
	CreatedAt time.Time `gorm:"comment:创建时间" json:"created_at"`
}

func (Admin) TableName() string { return "admins" }
