package llm

import (
	"VaccineVault/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

const geocodeSystemPrompt = `你是一个印度邮政编码地理编码器。用户给出一个 6 位 PIN code，` +
	`你只返回该邮编中心点的经纬度，格式严格为 "lat,lng"，保留 6 位小数，不输出任何其他文字。` +
	`如果无法确定位置，返回 "unknown"。`

var ErrGeocodeFailed = errors.New("无法解析该邮编的坐标")

// FetchPincodeCoordinates 用大模型做邮编兜底地理编码，仅在地图服务查不到时调用
func FetchPincodeCoordinates(ctx context.Context, pincode string) (lat, lng float64, err error) {
	if err = TextSem.Acquire(ctx, 1); err != nil {
		return 0, 0, err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(geocodeSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(pincode),
			},
		},
	}
	log.Info("正在请求AI大模型解析邮编", "pincode", pincode)
	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.TextModel),
		llms.WithTemperature(0),
	)
	if err != nil {
		return 0, 0, err
	}
	if len(resp.Choices) == 0 {
		return 0, 0, ErrGeocodeFailed
	}
	return parseLatLng(resp.Choices[0].Content)
}

// parseLatLng 解析 "lat,lng" 文本并做范围校验
func parseLatLng(text string) (lat, lng float64, err error) {
	text = strings.TrimSpace(text)
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return 0, 0, ErrGeocodeFailed
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, ErrGeocodeFailed
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, ErrGeocodeFailed
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, ErrGeocodeFailed
	}
	return lat, lng, nil
}
