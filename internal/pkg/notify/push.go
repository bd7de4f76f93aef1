package notify

import (
	"VaccineVault/internal/api/config"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// PushSender 调用推送网关给移动端下发通知
type PushSender struct {
	httpClient *resty.Client
	cfg        config.PushConfig
}

func NewPushSender(cfg *config.Config) *PushSender {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)
	return &PushSender{httpClient: client, cfg: cfg.Push}
}

func (s *PushSender) SendDoseReminder(token, vaccineName, dueDate string, overdue bool) error {
	title := "疫苗接种提醒"
	body := fmt.Sprintf("%s 应于 %s 接种", vaccineName, dueDate)
	if overdue {
		title = "疫苗逾期提醒"
		body = fmt.Sprintf("%s 已于 %s 到期，请尽快补种", vaccineName, dueDate)
	}

	resp, err := s.httpClient.R().
		SetHeader("Authorization", "key="+s.cfg.ApiKey).
		SetBody(map[string]any{
			"to": token,
			"notification": map[string]string{
				"title": title,
				"body":  body,
			},
		}).
		Post(s.cfg.URL)
	if err != nil {
		return fmt.Errorf("推送请求失败: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("推送网关返回 %d", resp.StatusCode())
	}
	return nil
}
