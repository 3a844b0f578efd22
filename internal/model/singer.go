package model

import "time"

// Singer 歌手模型
// Gender: 男/女/组合/未知
type Singer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;index;comment:歌手名" json:"name"`
	Gender      string    `gorm:"type:varchar(10);default:'未知';comment:性别" json:"gender"`
	Pic         string    `gorm:"type:varchar(255);comment:头像图片" json:"pic"`
	Description string    `gorm:"type:text;comment:简介" json:"description"`
	CreatedAt   time.Time `gorm:"comment:创建时间" json:"created_at"`
}

func (Singer) TableName() string { return "singers" }
