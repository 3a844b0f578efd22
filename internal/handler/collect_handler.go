package handler

import (
	"strconv"

	"music-server/internal/service"
	"music-server/pkg/response"

	"github.com/gin-gonic/gin"
)

// CollectHandler 收藏相关接口
type CollectHandler struct {
	service *service.CollectService
}

// NewCollectHandler 创建CollectHandler实例
func NewCollectHandler(s *service.CollectService) *CollectHandler {
	return &CollectHandler{service: s}
}

// collectReq 收藏请求体：song_id与song_list_id二选一
type collectReq struct {
	ConsumerID uint  `json:"consumer_id"`
	SongID     *uint `json:"song_id"`
	SongListID *uint `json:"song_list_id"`
}

// Add 添加收藏
func (h *CollectHandler) Add(c *gin.Context) {
	var r collectReq
	if err := c.ShouldBindJSON(&r); err != nil {
		response.Error(c, "请求参数错误")
		return
	}

	if err := h.service.Add(r.ConsumerID, r.SongID, r.SongListID); err != nil {
		fail(c, "添加收藏", err)
		return
	}
	response.SuccessWithMsg(c, "收藏成功", nil)
}

// Remove 取消收藏
func (h *CollectHandler) Remove(c *gin.Context) {
	var r collectReq
	if err := c.ShouldBindJSON(&r); err != nil {
		response.Error(c, "请求参数错误")
		return
	}

	if err := h.service.Remove(r.ConsumerID, r.SongID, r.SongListID); err != nil {
		fail(c, "取消收藏", err)
		return
	}
	response.SuccessWithMsg(c, "已取消收藏", nil)
}

// Check 查询收藏状态
func (h *CollectHandler) Check(c *gin.Context) {
	consumerID := parseUintQuery(c, "consumer_id")
	songID := parseOptionalUintQuery(c, "song_id")
	songListID := parseOptionalUintQuery(c, "song_list_id")

	collected, err := h.service.Check(consumerID, songID, songListID)
	if err != nil {
		fail(c, "收藏状态查询", err)
		return
	}
	response.Success(c, &response.CollectCheckResponse{IsCollected: collected})
}

// parseUintQuery 解析必填的数字查询参数，非法值按0处理（由业务层报参数错误）
func parseUintQuery(c *gin.Context, key string) uint {
	value, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}

// parseOptionalUintQuery 解析可选的数字查询参数，缺失或非法返回nil
func parseOptionalUintQuery(c *gin.Context, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(value)
	return &id
}
