package handler

import (
	"music-server/config"
	"music-server/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Handlers 全部接口处理器
type Handlers struct {
	Catalog  *CatalogHandler
	Consumer *ConsumerHandler
	Collect  *CollectHandler
	SongList *SongListHandler
	Upload   *UploadHandler
}

// RegisterRoutes 注册全部路由
// 所有API挂在/api前缀下，上传的静态资源单独对外暴露
func RegisterRoutes(router *gin.Engine, h Handlers, jwtSvc *jwt.JWTService, uploadCfg config.UploadConfig) {
	// 上传文件公开目录（头像等媒体资源）
	router.Static(uploadCfg.PublicPrefix, uploadCfg.Dir)

	api := router.Group("/api")

	// 目录只读接口
	h.Catalog.Register(api)

	// 认证与用户资料
	api.POST("/login", h.Consumer.Login)
	api.POST("/register", h.Consumer.Register)
	api.PUT("/users/:id", h.Consumer.Update)
	api.GET("/user/id", h.Consumer.UserID)
	api.GET("/users/profile", jwtSvc.AuthMiddleware(), h.Consumer.Profile)
	api.POST("/users/avatar", h.Upload.Avatar)

	// 收藏
	api.POST("/collects", h.Collect.Add)
	api.DELETE("/collects", h.Collect.Remove)
	api.GET("/collects/check", h.Collect.Check)

	// 歌单创建与成员管理
	api.POST("/songLists/create", h.SongList.Create)
	api.GET("/songLists/created", h.SongList.Created)
	api.POST("/songLists/addSong", h.SongList.AddSong)
	api.POST("/songLists/removeSong", h.SongList.RemoveSong)
	api.GET("/playlists/:playlistId/songs", h.SongList.Songs)
}
