package model

import "time"

// SongList 歌单模型
// UserID 为空表示官方/编辑推荐歌单，非空表示用户自建歌单
type SongList struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(100);not null;index;comment:标题" json:"title"`
	Style        string    `gorm:"type:varchar(50);comment:风格" json:"style"`
	Pic          string    `gorm:"type:varchar(255);comment:封面图片" json:"pic"`
	Introduction string    `gorm:"type:text;comment:简介" json:"introduction"`
	UserID       *uint     `gorm:"index;comment:创建者ID(空为官方歌单)" json:"user_id"`
	CreatedAt    time.Time `gorm:"comment:创建时间" json:"created_at"`
}

func (SongList) TableName() string { return "song_lists" }
