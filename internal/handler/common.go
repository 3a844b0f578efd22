package handler

import (
	"music-server/internal/service"
	"music-server/pkg/logger"
	"music-server/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fail 统一的错误出口：上游错误记日志，客户端始终收到 {code:-1, msg}
func fail(c *gin.Context, op string, err error) {
	if service.KindOf(err) == service.KindUpstream {
		logger.Error(op+"失败",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	response.Error(c, service.ClientMessage(err))
}
