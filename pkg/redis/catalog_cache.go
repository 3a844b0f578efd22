package redis

import (
	"encoding/json"
	"fmt"
	"time"

	"music-server/internal/model"
)

// 目录缓存相关常量
const (
	SwiperListKey          = "music:swipers"         // 轮播图列表缓存key
	PlaylistSongsKeyPrefix = "music:playlist:songs:" // 歌单歌曲缓存key前缀
)

// CatalogCacheTTL 目录缓存过期时间（从配置文件获取）
var CatalogCacheTTL = 10 * time.Minute

// SetCacheConfig 设置缓存配置
func SetCacheConfig(ttl time.Duration) {
	if ttl > 0 {
		CatalogCacheTTL = ttl
	}
}

// CacheSwipers 缓存轮播图列表
func CacheSwipers(swipers []model.Swiper) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	data, err := json.Marshal(swipers)
	if err != nil {
		return fmt.Errorf("序列化轮播图列表失败: %w", err)
	}
	if err := Set(SwiperListKey, data, CatalogCacheTTL); err != nil {
		return fmt.Errorf("缓存轮播图列表失败: %w", err)
	}
	return nil
}

// GetCachedSwipers 获取缓存的轮播图列表
func GetCachedSwipers() ([]model.Swiper, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	data, err := Get(SwiperListKey)
	if err != nil {
		return nil, err
	}

	var swipers []model.Swiper
	if err := json.Unmarshal([]byte(data), &swipers); err != nil {
		return nil, fmt.Errorf("反序列化轮播图列表失败: %w", err)
	}
	return swipers, nil
}

// CachePlaylistSongs 缓存歌单内的歌曲列表
func CachePlaylistSongs(songListID uint, songs []model.Song) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", PlaylistSongsKeyPrefix, songListID)
	data, err := json.Marshal(songs)
	if err != nil {
		return fmt.Errorf("序列化歌单歌曲失败: %w", err)
	}
	if err := Set(key, data, CatalogCacheTTL); err != nil {
		return fmt.Errorf("缓存歌单歌曲失败: %w", err)
	}
	return nil
}

// GetCachedPlaylistSongs 获取缓存的歌单歌曲列表
func GetCachedPlaylistSongs(songListID uint) ([]model.Song, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", PlaylistSongsKeyPrefix, songListID)
	data, err := Get(key)
	if err != nil {
		return nil, err
	}

	var songs []model.Song
	if err := json.Unmarshal([]byte(data), &songs); err != nil {
		return nil, fmt.Errorf("反序列化歌单歌曲失败: %w", err)
	}
	return songs, nil
}

// InvalidatePlaylistSongs 歌单成员变更后失效对应缓存
func InvalidatePlaylistSongs(songListID uint) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", PlaylistSongsKeyPrefix, songListID)
	return Del(key)
}
