package model

import "time"

// ListSong 歌单-歌曲关联模型
// 歌单内歌曲顺序即插入顺序（按id升序）
type ListSong struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SongListID uint      `gorm:"not null;index;comment:歌单ID" json:"song_list_id"`
	SongID     uint      `gorm:"not null;index;comment:歌曲ID" json:"song_id"`
	CreatedAt  time.Time `gorm:"comment:创建时间" json:"created_at"`

	Song     *Song     `gorm:"foreignKey:SongID" json:"song,omitempty"`
	SongList *SongList `gorm:"foreignKey:SongListID" json:"songList,omitempty"`
}

func (ListSong) TableName() string { return "list_songs" }
