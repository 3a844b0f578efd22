package model

import "time"

// Song 歌曲模型
// SingerID 允许为空（歌曲可暂未关联歌手）
type Song struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;index;comment:歌曲名" json:"name"`
	SingerID  *uint     `gorm:"index;comment:歌手ID" json:"singer_id"`
	URL       string    `gorm:"type:varchar(255);not null;comment:音频地址" json:"url"`
	Pic       string    `gorm:"type:varchar(255);comment:封面图片" json:"pic"`
	Lyric     string    `gorm:"type:text;comment:歌词" json:"lyric"`
	CreatedAt time.Time `gorm:"comment:创建时间" json:"created_at"`

	Singer *Singer `gorm:"foreignKey:SingerID" json:"singer,omitempty"`
}

func (Song) TableName() string { return "songs" }
