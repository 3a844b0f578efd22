package handler

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"music-server/config"
	"music-server/internal/service"
	"music-server/pkg/logger"
	"music-server/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadHandler 头像上传接口
// 校验顺序：文件存在 → userId存在 → MIME为图片 → 大小限制 → 用户存在，
// 全部通过后才落盘并写库
type UploadHandler struct {
	consumers *service.ConsumerService
	cfg       config.UploadConfig
}

// NewUploadHandler 创建UploadHandler实例
func NewUploadHandler(consumers *service.ConsumerService, cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{consumers: consumers, cfg: cfg}
}

// Avatar 上传用户头像（multipart表单：avatar文件 + userId字段）
func (h *UploadHandler) Avatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, "请选择要上传的头像文件")
		return
	}

	userIDStr := c.PostForm("userId")
	if userIDStr == "" {
		response.Error(c, "userId不能为空")
		return
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		response.Error(c, "userId必须为数字")
		return
	}

	// 只接受图片类型
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		response.Error(c, "仅支持上传图片文件")
		return
	}
	if file.Size > h.cfg.MaxSize {
		response.Error(c, fmt.Sprintf("文件大小不能超过%s", formatSize(h.cfg.MaxSize)))
		return
	}

	// 先确认用户存在，再写磁盘和数据库
	if _, err := h.consumers.GetByID(uint(userID)); err != nil {
		fail(c, "头像上传", err)
		return
	}

	// 时间戳+随机段的文件名，避免并发上传互相覆盖
	filename := fmt.Sprintf("avatar_%d_%s%s",
		time.Now().Unix(),
		uuid.NewString()[:8],
		filepath.Ext(file.Filename),
	)

	if err := os.MkdirAll(h.cfg.Dir, 0755); err != nil {
		fail(c, "头像上传", service.Upstream(err))
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.Dir, filename)); err != nil {
		fail(c, "头像上传", service.Upstream(err))
		return
	}

	publicPath := path.Join(h.cfg.PublicPrefix, filename)
	if err := h.consumers.UpdateAvatar(uint(userID), publicPath); err != nil {
		fail(c, "头像上传", err)
		return
	}

	logger.Info("头像上传成功",
		zap.Uint64("user_id", userID),
		zap.String("path", publicPath),
		zap.Int64("size", file.Size),
	)
	response.Success(c, &response.UploadResponse{URL: publicPath})
}

// formatSize 按大小选择KB或MB单位，避免小限额显示为0MB
func formatSize(n int64) string {
	if n < 1024*1024 {
		return fmt.Sprintf("%dKB", n/1024)
	}
	return fmt.Sprintf("%dMB", n/(1024*1024))
}
