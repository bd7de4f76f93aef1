package kafka

import (
	"VaccineVault/internal/pkg/mongo"
	"VaccineVault/internal/pkg/notify"
	"context"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
	json "github.com/goccy/go-json"
)

// ReminderHandler 消费疫苗提醒消息：发邮件、发推送、写站内信
type ReminderHandler struct {
	email   *notify.EmailSender
	push    *notify.PushSender
	boxRepo mongo.ReminderBoxRepo
}

func NewReminderHandler(email *notify.EmailSender, push *notify.PushSender, boxRepo mongo.ReminderBoxRepo) *ReminderHandler {
	return &ReminderHandler{email: email, push: push, boxRepo: boxRepo}
}

func (h *ReminderHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *ReminderHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *ReminderHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		batch := pullBatch(claim)
		if batch == nil {
			return nil
		}
		for _, msg := range batch {
			processWithRetry(msg, h.handle)
			session.MarkMessage(msg, "")
		}
		session.Commit()
	}
}

func (h *ReminderHandler) handle(msg *sarama.ConsumerMessage) error {
	var reminder ReminderMessage
	if err := json.Unmarshal(msg.Value, &reminder); err != nil {
		// 坏消息直接丢弃，重试也无济于事
		slog.Error("提醒消息反序列化失败", "error", err, "offset", msg.Offset)
		return nil
	}

	if reminder.Email != "" {
		if err := h.email.SendDoseReminder(reminder.Email, reminder.VaccineName, reminder.DueDate, reminder.DoseNumber, reminder.Overdue); err != nil {
			slog.Warn("提醒邮件发送失败", "userId", reminder.UserID, "error", err)
		}
	}
	if reminder.PushToken != "" {
		if err := h.push.SendDoseReminder(reminder.PushToken, reminder.VaccineName, reminder.DueDate, reminder.Overdue); err != nil {
			slog.Warn("提醒推送发送失败", "userId", reminder.UserID, "error", err)
		}
	}

	content := fmt.Sprintf("您的疫苗 %s 第 %d 剂应于 %s 接种", reminder.VaccineName, reminder.DoseNumber, reminder.DueDate)
	if reminder.Overdue {
		content = fmt.Sprintf("您的疫苗 %s 第 %d 剂已于 %s 到期，请尽快补种", reminder.VaccineName, reminder.DoseNumber, reminder.DueDate)
	}
	err := h.boxRepo.CreateReminder(context.Background(), &mongo.ReminderBoxModel{
		UserID:        reminder.UserID,
		UserVaccineID: reminder.UserVaccineID,
		VaccineName:   reminder.VaccineName,
		DueDate:       reminder.DueDate,
		Overdue:       reminder.Overdue,
		Content:       content,
	})
	if err != nil {
		return fmt.Errorf("写入站内提醒失败: %w", err)
	}
	return nil
}
