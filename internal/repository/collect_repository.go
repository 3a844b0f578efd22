package repository

import (
	"music-server/internal/model"

	"gorm.io/gorm"
)

// CollectRepository 收藏数据仓储
type CollectRepository struct {
	db *gorm.DB
}

// NewCollectRepository 创建CollectRepository实例
func NewCollectRepository(db *gorm.DB) *CollectRepository {
	return &CollectRepository{db: db}
}

// targetScope 按收藏目标构建过滤条件
func targetScope(tx *gorm.DB, consumerID uint, target model.CollectTarget) *gorm.DB {
	tx = tx.Where("consumer_id = ?", consumerID)
	switch target.Kind {
	case model.TargetSong:
		return tx.Where("song_id = ?", target.ID)
	default:
		return tx.Where("song_list_id = ?", target.ID)
	}
}

// Create 创建收藏记录
func (r *CollectRepository) Create(collect *model.Collect) error {
	return r.db.Create(collect).Error
}

// Exists 收藏是否已存在
func (r *CollectRepository) Exists(consumerID uint, target model.CollectTarget) (bool, error) {
	var count int64
	tx := targetScope(r.db.Model(&model.Collect{}), consumerID, target)
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete 删除匹配的收藏记录，返回删除的行数
func (r *CollectRepository) Delete(consumerID uint, target model.CollectTarget) (int64, error) {
	tx := targetScope(r.db, consumerID, target).Delete(&model.Collect{})
	return tx.RowsAffected, tx.Error
}
