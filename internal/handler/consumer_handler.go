package handler

import (
	"strconv"

	"music-server/internal/service"
	"music-server/pkg/jwt"
	"music-server/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConsumerHandler 用户相关接口
type ConsumerHandler struct {
	service *service.ConsumerService
}

// NewConsumerHandler 创建ConsumerHandler实例
func NewConsumerHandler(s *service.ConsumerService) *ConsumerHandler {
	return &ConsumerHandler{service: s}
}

// Register 用户注册
func (h *ConsumerHandler) Register(c *gin.Context) {
	type req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.Error(c, "请求参数错误")
		return
	}

	consumer, token, err := h.service.Register(r.Username, r.Email, r.Password)
	if err != nil {
		fail(c, "用户注册", err)
		return
	}

	response.Success(c, &response.RegisterResponse{
		User:        response.FilterConsumerInfo(consumer),
		AccessToken: token,
	})
}

// Login 用户登录
func (h *ConsumerHandler) Login(c *gin.Context) {
	type req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.Error(c, "请求参数错误")
		return
	}

	consumer, token, err := h.service.Login(r.Username, r.Password)
	if err != nil {
		fail(c, "用户登录", err)
		return
	}

	response.Success(c, &response.LoginResponse{
		User:        response.FilterConsumerInfo(consumer),
		AccessToken: token,
	})
}

// Update 更新用户资料（只应用请求携带的字段）
func (h *ConsumerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, "用户ID无效")
		return
	}

	type req struct {
		Username     *string `json:"username"`
		Password     *string `json:"password"`
		Email        *string `json:"email"`
		Avatar       *string `json:"avatar"`
		Nickname     *string `json:"nickname"`
		Introduction *string `json:"introduction"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.Error(c, "请求参数错误")
		return
	}

	consumer, err := h.service.UpdateProfile(uint(id), service.ProfileUpdate{
		Username:     r.Username,
		Password:     r.Password,
		Email:        r.Email,
		Avatar:       r.Avatar,
		Nickname:     r.Nickname,
		Introduction: r.Introduction,
	})
	if err != nil {
		fail(c, "用户资料更新", err)
		return
	}

	response.Success(c, response.FilterConsumerInfo(consumer))
}

// UserID 根据用户名解析用户ID
func (h *ConsumerHandler) UserID(c *gin.Context) {
	id, err := h.service.ResolveID(c.Query("username"))
	if err != nil {
		fail(c, "用户ID解析", err)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// Profile 获取当前登录用户资料（需要JWT认证）
func (h *ConsumerHandler) Profile(c *gin.Context) {
	userID, err := strconv.ParseUint(jwt.GetUserID(c), 10, 32)
	if err != nil {
		response.Error(c, "用户未认证")
		return
	}

	consumer, err := h.service.GetByID(uint(userID))
	if err != nil {
		fail(c, "用户资料查询", err)
		return
	}

	response.Success(c, response.FilterConsumerInfo(consumer))
}
