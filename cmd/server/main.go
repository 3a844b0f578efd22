package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"music-server/config"
	"music-server/internal/handler"
	"music-server/internal/model"
	"music-server/internal/repository"
	"music-server/internal/service"
	dbPkg "music-server/pkg/db"
	"music-server/pkg/jwt"
	"music-server/pkg/logger"
	"music-server/pkg/redis"
	"music-server/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== 音乐服务启动 ===")
	log.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.String("upload_dir", cfg.Upload.Dir),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化数据库连接
	db, err := dbPkg.InitDB(cfg.Database)
	if err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	log.Info("数据库连接成功")

	// 3.1 自动迁移表结构
	if err := dbPkg.AutoMigrate(
		&model.Admin{},
		&model.Consumer{},
		&model.Singer{},
		&model.Song{},
		&model.SongList{},
		&model.ListSong{},
		&model.Collect{},
		&model.Comment{},
		&model.Rank{},
		&model.Swiper{},
	); err != nil {
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 3.2 初始化Redis（缓存不可用时降级为直查数据库）
	if err := redis.InitRedis(cfg.Redis); err != nil {
		log.Warn("Redis连接失败，目录缓存已禁用", zap.Error(err))
	} else {
		redis.SetCacheConfig(cfg.Cache.TTL)
		log.Info("Redis连接成功")
		defer redis.Close()
	}

	// 3.3 初始化业务服务
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	consumerRepo := repository.NewConsumerRepository(db)
	collectRepo := repository.NewCollectRepository(db)
	songListRepo := repository.NewSongListRepository(db)
	consumerSvc := service.NewConsumerService(consumerRepo, jwtSvc)
	collectSvc := service.NewCollectService(collectRepo)
	songListSvc := service.NewSongListService(songListRepo)

	handlers := handler.Handlers{
		Catalog:  handler.NewCatalogHandler(db),
		Consumer: handler.NewConsumerHandler(consumerSvc),
		Collect:  handler.NewCollectHandler(collectSvc),
		SongList: handler.NewSongListHandler(songListSvc),
		Upload:   handler.NewUploadHandler(consumerSvc, cfg.Upload),
	}

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := gin.New()

	// 使用中间件
	router.Use(logger.LoggerMiddleware())      // 自定义日志中间件
	router.Use(logger.ErrorLoggerMiddleware()) // 错误日志中间件

	// 6. 设置基础路由与业务路由
	setupBasicRoutes(router)
	handler.RegisterRoutes(router, handlers, jwtSvc, cfg.Upload)

	// 7. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. 启动HTTP服务器
	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")

	// 设置关闭超时
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 关闭HTTP服务器
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	log.Info("服务器已安全关闭")
}

// setupBasicRoutes 设置基础路由
func setupBasicRoutes(router *gin.Engine) {
	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		}
		response.Success(c, gin.H{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 根路径
	router.GET("/", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "音乐服务API",
			"version": "1.0.0",
		})
	})
}
