package service

import (
	"strings"

	"music-server/internal/model"
	"music-server/internal/repository"
	"music-server/pkg/logger"
	"music-server/pkg/redis"

	"go.uber.org/zap"
)

// SongListService 歌单业务逻辑
type SongListService struct {
	repo *repository.SongListRepository
}

// NewSongListService 创建SongListService实例
func NewSongListService(repo *repository.SongListRepository) *SongListService {
	return &SongListService{repo: repo}
}

// Create 创建用户歌单
// 主键由数据库自增分配，简介缺省为空串
func (s *SongListService) Create(title, introduction string, userID uint) (*model.SongList, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, Validation("歌单标题不能为空")
	}
	if userID == 0 {
		return nil, Validation("userId不能为空")
	}

	songList := &model.SongList{
		Title:        title,
		Introduction: introduction,
		UserID:       &userID,
	}
	if err := s.repo.Create(songList); err != nil {
		return nil, Upstream(err)
	}
	return songList, nil
}

// ListCreated 获取用户创建的歌单，按创建时间倒序
func (s *SongListService) ListCreated(userID uint) ([]model.SongList, error) {
	if userID == 0 {
		return nil, Validation("userId不能为空")
	}

	lists, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, Upstream(err)
	}
	return lists, nil
}

// AddSong 向歌单添加歌曲，重复添加报冲突
func (s *SongListService) AddSong(songListID, songID uint) error {
	if songListID == 0 || songID == 0 {
		return Validation("songListId和songId不能为空")
	}

	if _, err := s.repo.GetByID(songListID); err != nil {
		return wrapDB(err, "歌单不存在")
	}

	exists, err := s.repo.HasSong(songListID, songID)
	if err != nil {
		return Upstream(err)
	}
	if exists {
		return Conflict("歌曲已在歌单中")
	}

	if err := s.repo.AddSong(&model.ListSong{SongListID: songListID, SongID: songID}); err != nil {
		return Upstream(err)
	}
	s.invalidateCache(songListID)
	return nil
}

// RemoveSong 从歌单移除歌曲，无匹配记录报不存在
func (s *SongListService) RemoveSong(songListID, songID uint) error {
	if songListID == 0 || songID == 0 {
		return Validation("songListId和songId不能为空")
	}

	rows, err := s.repo.RemoveSong(songListID, songID)
	if err != nil {
		return Upstream(err)
	}
	if rows == 0 {
		return NotFound("歌曲不在歌单中")
	}
	s.invalidateCache(songListID)
	return nil
}

// GetSongs 获取歌单内的歌曲（按加入顺序），命中缓存时直接返回
// 返回的是展开后的歌曲对象，歌手信息已附带
func (s *SongListService) GetSongs(songListID uint) ([]model.Song, error) {
	if songListID == 0 {
		return nil, Validation("歌单ID不能为空")
	}

	if songs, err := redis.GetCachedPlaylistSongs(songListID); err == nil {
		return songs, nil
	}

	listSongs, err := s.repo.ListSongs(songListID)
	if err != nil {
		return nil, Upstream(err)
	}

	songs := make([]model.Song, 0, len(listSongs))
	for _, ls := range listSongs {
		if ls.Song == nil {
			// 歌曲已被删除的孤儿关联行，跳过
			continue
		}
		songs = append(songs, *ls.Song)
	}

	// 缓存写入尽力而为，失败不影响响应
	if err := redis.CachePlaylistSongs(songListID, songs); err != nil {
		logger.Debug("歌单歌曲缓存写入失败",
			zap.Uint("song_list_id", songListID),
			zap.Error(err),
		)
	}
	return songs, nil
}

func (s *SongListService) invalidateCache(songListID uint) {
	if err := redis.InvalidatePlaylistSongs(songListID); err != nil {
		logger.Debug("歌单歌曲缓存失效失败",
			zap.Uint("song_list_id", songListID),
			zap.Error(err),
		)
	}
}
