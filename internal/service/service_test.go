package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"music-server/config"
	"music-server/internal/model"
	"music-server/internal/repository"
	"music-server/pkg/jwt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Admin{}, &model.Consumer{}, &model.Singer{}, &model.Song{},
		&model.SongList{}, &model.ListSong{}, &model.Collect{},
		&model.Comment{}, &model.Rank{}, &model.Swiper{},
	); err != nil {
		t.Fatalf("自动迁移失败: %v", err)
	}
	return db
}

func newConsumerService(t *testing.T, db *gorm.DB) *ConsumerService {
	t.Helper()
	jwtSvc := jwt.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "music-server-test",
	})
	return NewConsumerService(repository.NewConsumerRepository(db), jwtSvc)
}

func assertKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("期望错误(kind=%d)，实际成功", kind)
	}
	if KindOf(err) != kind {
		t.Fatalf("错误类别 = %d, 期望 %d (err: %v)", KindOf(err), kind, err)
	}
}
