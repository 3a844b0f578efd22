package jwt

import (
	"testing"
	"time"

	"music-server/config"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "music-server-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService()

	token, err := svc.GenerateToken("42", map[string]interface{}{"username": "alice"})
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("验证token失败: %v", err)
	}
	if claims.Subject != "42" {
		t.Errorf("Subject = %s", claims.Subject)
	}
	if claims.Data["username"] != "alice" {
		t.Errorf("Data = %v", claims.Data)
	}
}

func TestValidateTokenFailures(t *testing.T) {
	svc := testService()

	if _, err := svc.ValidateToken(""); err == nil {
		t.Error("空token应验证失败")
	}
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("非法token应验证失败")
	}

	// 密钥不一致
	other := NewJWTService(config.JWTConfig{
		Secret: "other-secret", ExpireTime: time.Hour, Issuer: "music-server-test",
	})
	token, err := other.GenerateToken("1", nil)
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("他人密钥签发的token应验证失败")
	}

	if _, err := svc.GenerateToken("", nil); err == nil {
		t.Error("空userID应报错")
	}
}
