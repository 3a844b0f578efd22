package model

import "time"

// Collect 收藏记录
// SongID 与 SongListID 恰好一个非空（收藏歌曲或收藏歌单）
// 该约束由业务层的收藏目标解析保证，见 service.CollectTarget
type Collect struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ConsumerID uint      `gorm:"not null;index;comment:用户ID" json:"consumer_id"`
	SongID     *uint     `gorm:"index;comment:歌曲ID" json:"song_id"`
	SongListID *uint     `gorm:"index;comment:歌单ID" json:"song_list_id"`
	CreatedAt  time.Time `gorm:"comment:创建时间" json:"created_at"`
}

func (Collect) TableName() string { return "collects" }
