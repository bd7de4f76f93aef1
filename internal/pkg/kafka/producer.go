package kafka

import (
	"VaccineVault/internal/api/config"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/IBM/sarama"
	json "github.com/goccy/go-json"
)

// ReminderProducer 同步生产者，按用户 ID 作为 key 保证同一用户消息有序
type ReminderProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewReminderProducer(cfg *config.Config) (*ReminderProducer, error) {
	c := newSaramaConfig(cfg.Kafka)
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, c)
	if err != nil {
		return nil, fmt.Errorf("创建 Kafka 生产者失败: %w", err)
	}
	return &ReminderProducer{
		producer: producer,
		topic:    cfg.Reminder.Topic,
	}, nil
}

func (p *ReminderProducer) SendReminder(msg *ReminderMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("序列化提醒消息失败: %w", err)
	}
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(msg.UserID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("发送提醒消息失败: %w", err)
	}
	slog.Debug("提醒消息已发送", "partition", partition, "offset", offset, "userId", msg.UserID)
	return nil
}

func (p *ReminderProducer) Close() error {
	return p.producer.Close()
}
