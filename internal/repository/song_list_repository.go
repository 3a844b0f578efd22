package repository

import (
	"music-server/internal/model"

	"gorm.io/gorm"
)

// SongListRepository 歌单数据仓储
type SongListRepository struct {
	db *gorm.DB
}

// NewSongListRepository 创建SongListRepository实例
func NewSongListRepository(db *gorm.DB) *SongListRepository {
	return &SongListRepository{db: db}
}

// Create 创建歌单（主键由数据库自增分配）
func (r *SongListRepository) Create(songList *model.SongList) error {
	return r.db.Create(songList).Error
}

// GetByID 根据ID获取歌单
func (r *SongListRepository) GetByID(id uint) (*model.SongList, error) {
	var songList model.SongList
	if err := r.db.First(&songList, id).Error; err != nil {
		return nil, err
	}
	return &songList, nil
}

// ListByUser 获取指定用户创建的歌单，按创建时间倒序
func (r *SongListRepository) ListByUser(userID uint) ([]model.SongList, error) {
	var lists []model.SongList
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

// HasSong 歌曲是否已在歌单中
func (r *SongListRepository) HasSong(songListID, songID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ListSong{}).
		Where("song_list_id = ? AND song_id = ?", songListID, songID).
		Count(&count).Error
	return count > 0, err
}

// AddSong 向歌单添加歌曲
func (r *SongListRepository) AddSong(listSong *model.ListSong) error {
	return r.db.Create(listSong).Error
}

// RemoveSong 从歌单移除歌曲，返回删除的行数
func (r *SongListRepository) RemoveSong(songListID, songID uint) (int64, error) {
	tx := r.db.Where("song_list_id = ? AND song_id = ?", songListID, songID).
		Delete(&model.ListSong{})
	return tx.RowsAffected, tx.Error
}

// ListSongs 获取歌单内的歌曲，按加入顺序（关联行id升序）
// 每首歌曲附带歌手的id/name/pic
func (r *SongListRepository) ListSongs(songListID uint) ([]model.ListSong, error) {
	var listSongs []model.ListSong
	err := r.db.Where("song_list_id = ?", songListID).
		Preload("Song").
		Preload("Song.Singer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "pic")
		}).
		Order("id ASC").
		Find(&listSongs).Error
	return listSongs, err
}
