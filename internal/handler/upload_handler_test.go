package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"music-server/config"
	"music-server/internal/model"
	"music-server/internal/repository"
	"music-server/internal/service"
	"music-server/pkg/jwt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// newUploadRouter 返回带独立上传目录的路由
func newUploadRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	dir := t.TempDir()
	jwtSvc := jwt.NewJWTService(config.JWTConfig{
		Secret: "test-secret", ExpireTime: time.Hour, Issuer: "music-server-test",
	})
	uploadCfg := config.UploadConfig{
		Dir:          dir,
		PublicPrefix: "/uploads",
		MaxSize:      1024, // 便于测试大小限制
	}

	consumerSvc := service.NewConsumerService(repository.NewConsumerRepository(db), jwtSvc)
	router := gin.New()
	router.POST("/api/users/avatar", NewUploadHandler(consumerSvc, uploadCfg).Avatar)
	return router, db, dir
}

// multipartBody 构造带指定Content-Type的multipart请求体
func multipartBody(t *testing.T, userID, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if userID != "" {
		if err := writer.WriteField("userId", userID); err != nil {
			t.Fatalf("写入userId失败: %v", err)
		}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="avatar.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("创建文件段失败: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("写入文件内容失败: %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("关闭writer失败: %v", err)
	}
	return body, writer.FormDataContentType()
}

func postAvatar(t *testing.T, router *gin.Engine, body *bytes.Buffer, contentType string) map[string]interface{} {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/users/avatar", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v (body: %s)", err, w.Body.String())
	}
	return resp
}

func TestAvatarUploadRejectsNonImage(t *testing.T) {
	router, db, dir := newUploadRouter(t)
	consumer := model.Consumer{Username: "alice", Password: "hash", Avatar: "/uploads/old.png"}
	if err := db.Create(&consumer).Error; err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	body, contentType := multipartBody(t, "1", "application/octet-stream", []byte("not an image"))
	resp := postAvatar(t, router, body, contentType)
	if code(resp) != -1 {
		t.Fatalf("非图片应被拒绝: %v", resp)
	}

	// 拒绝发生在任何写操作之前：头像未变、目录为空
	var reloaded model.Consumer
	if err := db.First(&reloaded, consumer.ID).Error; err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if reloaded.Avatar != "/uploads/old.png" {
		t.Errorf("头像被意外修改: %s", reloaded.Avatar)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("读取目录失败: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("上传目录不应有文件: %d个", len(entries))
	}
}

func TestAvatarUploadRejectsOversizeAndMissingFields(t *testing.T) {
	router, db, _ := newUploadRouter(t)
	if err := db.Create(&model.Consumer{Username: "bob", Password: "hash"}).Error; err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	// 超过大小限制（MaxSize=1024），提示按KB展示而不是取整为0MB
	body, contentType := multipartBody(t, "1", "image/png", bytes.Repeat([]byte{0xAB}, 2048))
	resp := postAvatar(t, router, body, contentType)
	if code(resp) != -1 {
		t.Fatalf("超大文件应被拒绝: %v", resp)
	}
	if msg, _ := resp["msg"].(string); !strings.Contains(msg, "1KB") {
		t.Errorf("msg = %s, 期望包含1KB", msg)
	}

	// 缺少userId
	body, contentType = multipartBody(t, "", "image/png", []byte("tiny"))
	resp = postAvatar(t, router, body, contentType)
	if code(resp) != -1 {
		t.Fatalf("缺少userId应被拒绝: %v", resp)
	}

	// 用户不存在
	body, contentType = multipartBody(t, "999", "image/png", []byte("tiny"))
	resp = postAvatar(t, router, body, contentType)
	if code(resp) != -1 {
		t.Fatalf("用户不存在应被拒绝: %v", resp)
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1024, "1KB"},
		{512 * 1024, "512KB"},
		{1024 * 1024, "1MB"},
		{5 * 1024 * 1024, "5MB"},
	}
	for _, c := range cases {
		if got := formatSize(c.n); got != c.want {
			t.Errorf("formatSize(%d) = %s, 期望 %s", c.n, got, c.want)
		}
	}
}

func TestAvatarUploadSuccess(t *testing.T) {
	router, db, dir := newUploadRouter(t)
	consumer := model.Consumer{Username: "carol", Password: "hash"}
	if err := db.Create(&consumer).Error; err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	body, contentType := multipartBody(t, fmt.Sprint(consumer.ID), "image/png", []byte("png-bytes"))
	resp := postAvatar(t, router, body, contentType)
	if code(resp) != 0 {
		t.Fatalf("上传失败: %v", resp)
	}

	url := resp["data"].(map[string]interface{})["url"].(string)
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %s, 期望/uploads/前缀与.png后缀", url)
	}

	// 文件落盘
	saved := filepath.Join(dir, filepath.Base(url))
	if _, err := os.Stat(saved); err != nil {
		t.Errorf("文件未写入: %v", err)
	}

	// 头像路径写入用户资料
	var reloaded model.Consumer
	if err := db.First(&reloaded, consumer.ID).Error; err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if reloaded.Avatar != url {
		t.Errorf("Avatar = %s, 期望 %s", reloaded.Avatar, url)
	}
}
