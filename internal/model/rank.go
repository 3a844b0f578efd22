package model

import "time"

// Rank 歌单评分记录，分值1-10
type Rank struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ConsumerID uint      `gorm:"not null;index;comment:用户ID" json:"consumer_id"`
	SongListID uint      `gorm:"not null;index;comment:歌单ID" json:"song_list_id"`
	Score      int       `gorm:"not null;comment:评分(1-10)" json:"score"`
	CreatedAt  time.Time `gorm:"comment:创建时间" json:"created_at"`
}

func (Rank) TableName() string { return "ranks" }
