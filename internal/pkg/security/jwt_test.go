package security

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, []string{"user", "admin"})
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("校验 token 失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, 期望 42", claims.UserID)
	}
	if len(claims.Roles) != 2 || claims.Roles[1] != "admin" {
		t.Errorf("Roles = %v, 期望 [user admin]", claims.Roles)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(1, []string{"user"})
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("篡改后的 token 不应通过校验")
	}
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(7, []string{"user"})
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	sig, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("提取签名失败: %v", err)
	}
	if !strings.HasSuffix(token, "."+sig) {
		t.Error("签名应为 token 的最后一段")
	}

	if _, err := ExtractSignature("not-a-token"); err == nil {
		t.Error("非法 token 格式应返回错误")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}
	if err := CheckPasswordHash("s3cret!", hash); err != nil {
		t.Errorf("正确密码校验失败: %v", err)
	}
	if err := CheckPasswordHash("wrong", hash); err == nil {
		t.Error("错误密码不应通过校验")
	}
}
