package response

import (
	"net/http"

	"music-server/internal/model"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
// 无论成功失败HTTP状态码均为200，由code区分：0表示成功，-1表示失败
type Response struct {
	Code int         `json:"code"`           // 状态码：0成功，-1失败
	Msg  string      `json:"msg,omitempty"`  // 错误消息
	Data interface{} `json:"data,omitempty"` // 响应数据
}

// ListResponse 列表响应结构（带分页信息）
type ListResponse struct {
	Code     int         `json:"code"`
	Data     interface{} `json:"data"`
	Total    int64       `json:"total"`    // 过滤后、分页前的总条数
	Page     int         `json:"page"`     // 当前页码
	PageSize int         `json:"pageSize"` // 每页条数
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Data: data,
	})
}

// SuccessWithMsg 带提示消息的成功响应
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  msg,
		Data: data,
	})
}

// SuccessList 列表成功响应，附带总数与分页回显
func SuccessList(c *gin.Context, data interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, ListResponse{
		Code:     0,
		Data:     data,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Error 错误响应（统一code:-1）
func Error(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Response{
		Code: -1,
		Msg:  msg,
	})
}

// ConsumerInfo 用户信息（隐藏密码等敏感字段）
// 头像路径按前端约定以avatarUrl键名返回
type ConsumerInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
	CreatedAt string `json:"created_at"`
}

// FilterConsumerInfo 过滤用户信息，隐藏敏感字段
func FilterConsumerInfo(consumer *model.Consumer) *ConsumerInfo {
	if consumer == nil {
		return nil
	}

	return &ConsumerInfo{
		ID:        consumer.ID,
		Username:  consumer.Username,
		Email:     consumer.Email,
		AvatarURL: consumer.Avatar,
		CreatedAt: consumer.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// LoginResponse 登录响应
type LoginResponse struct {
	User        *ConsumerInfo `json:"user"`
	AccessToken string        `json:"access_token"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	User        *ConsumerInfo `json:"user"`
	AccessToken string        `json:"access_token"`
}

// CollectCheckResponse 收藏状态响应
type CollectCheckResponse struct {
	IsCollected bool `json:"isCollected"`
}

// UploadResponse 文件上传响应
type UploadResponse struct {
	URL string `json:"url"`
}
