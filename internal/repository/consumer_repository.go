package repository

import (
	"music-server/internal/model"

	"gorm.io/gorm"
)

// ConsumerRepository 用户数据仓储
type ConsumerRepository struct {
	db *gorm.DB
}

// NewConsumerRepository 创建ConsumerRepository实例
func NewConsumerRepository(db *gorm.DB) *ConsumerRepository {
	return &ConsumerRepository{db: db}
}

// Create 创建用户
func (r *ConsumerRepository) Create(consumer *model.Consumer) error {
	return r.db.Create(consumer).Error
}

// GetByID 根据ID获取用户
func (r *ConsumerRepository) GetByID(id uint) (*model.Consumer, error) {
	var consumer model.Consumer
	if err := r.db.First(&consumer, id).Error; err != nil {
		return nil, err
	}
	return &consumer, nil
}

// GetByUsername 根据用户名精确查询用户
func (r *ConsumerRepository) GetByUsername(username string) (*model.Consumer, error) {
	var consumer model.Consumer
	if err := r.db.Where("username = ?", username).First(&consumer).Error; err != nil {
		return nil, err
	}
	return &consumer, nil
}

// UsernameExists 用户名是否已被占用（excludeID排除指定用户自身）
func (r *ConsumerRepository) UsernameExists(username string, excludeID uint) (bool, error) {
	var count int64
	tx := r.db.Model(&model.Consumer{}).Where("username = ?", username)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateFields 只更新给定的字段
func (r *ConsumerRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&model.Consumer{}).Where("id = ?", id).Updates(fields).Error
}
