package model

import "time"

// Swiper 首页轮播图
type Swiper struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Pic       string    `gorm:"type:varchar(255);not null;comment:图片地址" json:"pic"`
	URL       string    `gorm:"type:varchar(255);comment:跳转链接" json:"url"`
	Title     string    `gorm:"type:varchar(100);comment:标题" json:"title"`
	CreatedAt time.Time `gorm:"comment:创建时间" json:"created_at"`
}

func (Swiper) TableName() string { return "swipers" }
