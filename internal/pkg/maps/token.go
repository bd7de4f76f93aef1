package maps

import (
	"VaccineVault/internal/pkg/consts"
	"VaccineVault/internal/pkg/redis"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"sync"
	"time"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

var tokenMu sync.Mutex

// getAccessToken 获取地图服务的 OAuth 令牌，优先走 Redis 缓存
// 缓存时长比官方有效期短 5 分钟，避免拿到临期令牌
func (c *MapsClient) getAccessToken(ctx context.Context) (string, error) {
	if token, err := redis.GetValue(ctx, consts.MapsTokenKey); err == nil && token != "" {
		return token, nil
	}

	tokenMu.Lock()
	defer tokenMu.Unlock()

	// 双重检查，拿锁期间可能已有请求刷新过
	if token, err := redis.GetValue(ctx, consts.MapsTokenKey); err == nil && token != "" {
		return token, nil
	}

	var result tokenResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.cfg.ClientID,
			"client_secret": c.cfg.ClientSecret,
		}).
		SetResult(&result).
		Post(c.cfg.TokenURL)
	if err != nil {
		return "", fmt.Errorf("请求地图令牌失败: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("地图令牌接口返回 %d", resp.StatusCode())
	}
	if result.AccessToken == "" {
		return "", errors.New("地图令牌响应为空")
	}

	ttl := time.Duration(result.ExpiresIn)*time.Second - 5*time.Minute
	if ttl > 0 {
		if err := redis.SetWithExpiration(ctx, consts.MapsTokenKey, result.AccessToken, ttl); err != nil {
			log.WarnContext(ctx, "缓存地图令牌失败", "error", err)
		}
	}
	return result.AccessToken, nil
}
