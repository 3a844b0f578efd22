package service

import (
	"music-server/internal/model"
	"music-server/internal/repository"
)

// CollectService 收藏业务逻辑
type CollectService struct {
	repo *repository.CollectRepository
}

// NewCollectService 创建CollectService实例
func NewCollectService(repo *repository.CollectRepository) *CollectService {
	return &CollectService{repo: repo}
}

// resolveTarget 解析收藏目标，consumerID与目标必须完整
func resolveTarget(consumerID uint, songID, songListID *uint) (model.CollectTarget, error) {
	if consumerID == 0 {
		return model.CollectTarget{}, Validation("consumerId不能为空")
	}
	target, ok := model.CollectTargetFrom(songID, songListID)
	if !ok {
		return model.CollectTarget{}, Validation("songId与songListId必须且只能提供一个")
	}
	return target, nil
}

// Add 添加收藏，重复收藏报冲突
func (s *CollectService) Add(consumerID uint, songID, songListID *uint) error {
	target, err := resolveTarget(consumerID, songID, songListID)
	if err != nil {
		return err
	}

	exists, err := s.repo.Exists(consumerID, target)
	if err != nil {
		return Upstream(err)
	}
	if exists {
		return Conflict("已收藏过该内容")
	}

	collect := &model.Collect{
		ConsumerID: consumerID,
		SongID:     target.SongID(),
		SongListID: target.SongListID(),
	}
	if err := s.repo.Create(collect); err != nil {
		return Upstream(err)
	}
	return nil
}

// Remove 取消收藏，无匹配记录报不存在
func (s *CollectService) Remove(consumerID uint, songID, songListID *uint) error {
	target, err := resolveTarget(consumerID, songID, songListID)
	if err != nil {
		return err
	}

	rows, err := s.repo.Delete(consumerID, target)
	if err != nil {
		return Upstream(err)
	}
	if rows == 0 {
		return NotFound("收藏记录不存在")
	}
	return nil
}

// Check 查询收藏状态，无论是否收藏均成功返回
func (s *CollectService) Check(consumerID uint, songID, songListID *uint) (bool, error) {
	target, err := resolveTarget(consumerID, songID, songListID)
	if err != nil {
		return false, err
	}

	exists, err := s.repo.Exists(consumerID, target)
	if err != nil {
		return false, Upstream(err)
	}
	return exists, nil
}
