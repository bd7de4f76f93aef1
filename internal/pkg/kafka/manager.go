package kafka

import (
	"VaccineVault/internal/api/config"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理提醒消费组的生命周期
type ConsumerManager struct {
	group   sarama.ConsumerGroup
	topic   string
	handler sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, handler *ReminderHandler) (*ConsumerManager, error) {
	c := newSaramaConfig(cfg.Kafka)
	group, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Reminder.GroupID, c)
	if err != nil {
		return nil, fmt.Errorf("创建 Kafka 消费组失败: %w", err)
	}
	return &ConsumerManager{
		group:   group,
		topic:   cfg.Reminder.Topic,
		handler: handler,
	}, nil
}

// Start 阻塞消费直到 ctx 取消，rebalance 后自动重新进入消费循环
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.group.Errors() {
			slog.Error("Kafka 消费组错误", "error", err)
		}
	}()

	for {
		if err := m.group.Consume(ctx, []string{m.topic}, m.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			slog.Error("Kafka 消费失败", "error", err)
		}
		if ctx.Err() != nil {
			return m.group.Close()
		}
	}
}
