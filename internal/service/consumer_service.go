package service

import (
	"errors"
	"fmt"
	"strings"

	"music-server/internal/model"
	"music-server/internal/repository"
	"music-server/pkg/jwt"
	"music-server/pkg/password"

	"gorm.io/gorm"
)

// ConsumerService 用户业务逻辑
type ConsumerService struct {
	repo       *repository.ConsumerRepository
	jwtService *jwt.JWTService
}

// NewConsumerService 创建ConsumerService实例
func NewConsumerService(repo *repository.ConsumerRepository, jwtService *jwt.JWTService) *ConsumerService {
	return &ConsumerService{repo: repo, jwtService: jwtService}
}

// ProfileUpdate 资料更新请求，nil字段保持不变
type ProfileUpdate struct {
	Username     *string
	Password     *string
	Email        *string
	Avatar       *string
	Nickname     *string
	Introduction *string
}

// Register 注册
func (s *ConsumerService) Register(username, email, plainPassword string) (*model.Consumer, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || plainPassword == "" {
		return nil, "", Validation("用户名和密码不能为空")
	}

	// 用户名唯一性检查
	exists, err := s.repo.UsernameExists(username, 0)
	if err != nil {
		return nil, "", Upstream(err)
	}
	if exists {
		return nil, "", Conflict("用户名已存在")
	}

	// 密码哈希
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, "", Upstream(err)
	}

	consumer := &model.Consumer{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.repo.Create(consumer); err != nil {
		return nil, "", Upstream(err)
	}

	token, err := s.issueToken(consumer)
	if err != nil {
		return nil, "", err
	}
	return consumer, token, nil
}

// Login 登录
func (s *ConsumerService) Login(username, plainPassword string) (*model.Consumer, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || plainPassword == "" {
		return nil, "", Validation("用户名和密码不能为空")
	}

	consumer, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, "", wrapDB(err, "用户不存在")
	}
	if !password.Verify(plainPassword, consumer.Password) {
		return nil, "", Validation("密码错误")
	}

	token, err := s.issueToken(consumer)
	if err != nil {
		return nil, "", err
	}
	return consumer, token, nil
}

// GetByID 根据ID获取用户
func (s *ConsumerService) GetByID(id uint) (*model.Consumer, error) {
	consumer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, wrapDB(err, "用户不存在")
	}
	return consumer, nil
}

// ResolveID 根据用户名解析用户ID
func (s *ConsumerService) ResolveID(username string) (uint, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, Validation("用户名不能为空")
	}
	consumer, err := s.repo.GetByUsername(username)
	if err != nil {
		return 0, wrapDB(err, "用户不存在")
	}
	return consumer.ID, nil
}

// UpdateProfile 稀疏更新用户资料，仅应用请求携带的字段
func (s *ConsumerService) UpdateProfile(id uint, update ProfileUpdate) (*model.Consumer, error) {
	consumer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, wrapDB(err, "用户不存在")
	}

	fields := map[string]interface{}{}

	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if username == "" {
			return nil, Validation("用户名不能为空")
		}
		// 用户名变更时重新校验唯一性（排除自身）
		if username != consumer.Username {
			exists, err := s.repo.UsernameExists(username, id)
			if err != nil {
				return nil, Upstream(err)
			}
			if exists {
				return nil, Conflict("用户名已存在")
			}
		}
		fields["username"] = username
	}
	if update.Password != nil {
		hash, err := password.Hash(*update.Password)
		if err != nil {
			return nil, Upstream(err)
		}
		fields["password"] = hash
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Avatar != nil {
		fields["avatar"] = *update.Avatar
	}
	if update.Nickname != nil {
		fields["nickname"] = *update.Nickname
	}
	if update.Introduction != nil {
		fields["introduction"] = *update.Introduction
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(id, fields); err != nil {
			return nil, Upstream(err)
		}
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, Upstream(err)
	}
	return updated, nil
}

// UpdateAvatar 更新用户头像路径
func (s *ConsumerService) UpdateAvatar(id uint, path string) error {
	if err := s.repo.UpdateFields(id, map[string]interface{}{"avatar": path}); err != nil {
		return Upstream(err)
	}
	return nil
}

func (s *ConsumerService) issueToken(consumer *model.Consumer) (string, error) {
	token, err := s.jwtService.GenerateToken(
		fmt.Sprintf("%d", consumer.ID),
		map[string]interface{}{"username": consumer.Username},
	)
	if err != nil {
		return "", Upstream(err)
	}
	return token, nil
}

// wrapDB 将gorm错误映射为业务错误
func wrapDB(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFoundMsg)
	}
	return Upstream(err)
}
