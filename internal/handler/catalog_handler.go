package handler

import (
	"errors"
	"strconv"

	"music-server/internal/model"
	"music-server/internal/query"
	"music-server/pkg/logger"
	"music-server/pkg/redis"
	"music-server/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogHandler 目录只读接口：一条通用查询路径覆盖全部列表/详情端点，
// 各实体的差异由查询策略表描述
type CatalogHandler struct {
	db *gorm.DB
}

// NewCatalogHandler 创建CatalogHandler实例
func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// 各实体的查询策略
var (
	swiperConfig = query.Config{}

	songConfig = query.Config{
		SongSearch: true,
		Preloads:   []query.Preload{{Name: "Singer", Columns: []string{"id", "name"}}},
	}

	singerConfig = query.Config{KeywordColumn: "name"}

	// 官方歌单：user_id为空，用户自建歌单走 /songLists/created
	songListConfig = query.Config{
		KeywordColumn: "title",
		Scope: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("user_id IS NULL")
		},
	}

	listSongConfig = query.Config{
		Preloads: []query.Preload{{Name: "Song"}, {Name: "SongList"}},
	}

	collectConfig = query.Config{}

	commentConfig = query.Config{
		Preloads: []query.Preload{{Name: "Consumer", Columns: []string{"id", "username"}}},
	}

	rankConfig = query.Config{}

	consumerConfig = query.Config{KeywordColumn: "username"}

	adminConfig = query.Config{KeywordColumn: "username"}
)

// Register 注册目录GET路由
func (h *CatalogHandler) Register(api *gin.RouterGroup) {
	api.GET("/swipers", h.listSwipers)
	api.GET("/songs", listHandler[model.Song](h.db, "歌曲", songConfig))
	api.GET("/singers", listHandler[model.Singer](h.db, "歌手", singerConfig))
	api.GET("/singers/:id", getHandler[model.Singer](h.db, "歌手", singerConfig))
	api.GET("/songlists", listHandler[model.SongList](h.db, "歌单", songListConfig))
	api.GET("/listsongs", listHandler[model.ListSong](h.db, "歌单歌曲", listSongConfig))
	api.GET("/collects", listHandler[model.Collect](h.db, "收藏", collectConfig))
	api.GET("/comments", listHandler[model.Comment](h.db, "评论", commentConfig))
	api.GET("/ranks", listHandler[model.Rank](h.db, "评分", rankConfig))
	api.GET("/consumers", listHandler[model.Consumer](h.db, "用户", consumerConfig))
	api.GET("/admins", listHandler[model.Admin](h.db, "管理员", adminConfig))
}

// listHandler 构造通用列表处理函数
func listHandler[T any](db *gorm.DB, entity string, cfg query.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := parseParams(c)
		rows, total, err := query.List[T](db, cfg, p)
		if err != nil {
			logger.Error("列表查询失败", zap.String("entity", entity), zap.Error(err))
			response.Error(c, err.Error())
			return
		}
		response.SuccessList(c, rows, total, p.Page, p.PageSize)
	}
}

// getHandler 构造通用详情处理函数
func getHandler[T any](db *gorm.DB, entity string, cfg query.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			response.Error(c, "数据不存在")
			return
		}

		row, err := query.Get[T](db, cfg, uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, "数据不存在")
				return
			}
			logger.Error("详情查询失败", zap.String("entity", entity), zap.Error(err))
			response.Error(c, err.Error())
			return
		}
		response.Success(c, row)
	}
}

// listSwipers 轮播图列表
// 首页高频访问且数据很少变化，默认参数下走Redis缓存
func (h *CatalogHandler) listSwipers(c *gin.Context) {
	p := parseParams(c)
	cacheable := !p.Paginate && p.Keyword == ""

	if cacheable {
		if swipers, err := redis.GetCachedSwipers(); err == nil {
			response.SuccessList(c, swipers, int64(len(swipers)), p.Page, p.PageSize)
			return
		}
	}

	rows, total, err := query.List[model.Swiper](h.db, swiperConfig, p)
	if err != nil {
		logger.Error("列表查询失败", zap.String("entity", "轮播图"), zap.Error(err))
		response.Error(c, err.Error())
		return
	}

	if cacheable {
		if err := redis.CacheSwipers(rows); err != nil {
			logger.Debugf("轮播图缓存写入失败: %v", err)
		}
	}
	response.SuccessList(c, rows, total, p.Page, p.PageSize)
}

// parseParams 解析列表查询参数
func parseParams(c *gin.Context) query.Params {
	return query.ParseParams(
		c.Query("page"),
		c.Query("pageSize"),
		c.Query("keyword"),
		c.Query("singerId"),
	)
}
