package model

import "time"

// Comment 评论模型
// 与收藏一样，评论目标是歌曲或歌单二选一
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ConsumerID uint      `gorm:"not null;index;comment:用户ID" json:"consumer_id"`
	SongID     *uint     `gorm:"index;comment:歌曲ID" json:"song_id"`
	SongListID *uint     `gorm:"index;comment:歌单ID" json:"song_list_id"`
	Content    string    `gorm:"type:text;not null;comment:评论内容" json:"content"`
	CreatedAt  time.Time `gorm:"comment:创建时间" json:"created_at"`

	Consumer *Consumer `gorm:"foreignKey:ConsumerID" json:"consumer,omitempty"`
}

func (Comment) TableName() string { return "comments" }
