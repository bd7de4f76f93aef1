package job

import (
	"VaccineVault/internal/pkg/kafka"
	"VaccineVault/internal/pkg/logger"
	"VaccineVault/internal/pkg/schedule"
	"VaccineVault/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// ReminderJob 每日扫描到期剂次，逐条投递到 Kafka 供消费端发送提醒
type ReminderJob struct {
	userRepo        repository.UserRepo
	userVaccineRepo repository.UserVaccineRepo
	producer        *kafka.ReminderProducer
}

func NewReminderJob(userRepo repository.UserRepo, userVaccineRepo repository.UserVaccineRepo, producer *kafka.ReminderProducer) *ReminderJob {
	return &ReminderJob{
		userRepo:        userRepo,
		userVaccineRepo: userVaccineRepo,
		producer:        producer,
	}
}

func (s *ReminderJob) Run() {
	traceID := "job-reminder-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	today := schedule.Day(time.Now())
	rows, err := s.userVaccineRepo.GetDueReminders(ctx, today)
	if err != nil {
		log.ErrorContext(ctx, "query due reminders error", "err", err)
		return
	}

	log.InfoContext(ctx, "ReminderJob processing", "due_count", len(rows))

	sent := 0
	for _, row := range rows {
		user, err := s.userRepo.GetUserById(ctx, row.UserID)
		if err != nil {
			log.ErrorContext(ctx, "load user for reminder error", "user_id", row.UserID, "err", err)
			continue
		}
		if user == nil || user.IsDelete {
			continue
		}

		msg := &kafka.ReminderMessage{
			UserID:        row.UserID,
			UserVaccineID: row.ID,
			VaccineName:   row.Vaccine.GenericName,
			DoseNumber:    row.CompletedDoses + 1,
			DueDate:       row.NextDueDate.Format("2006-01-02"),
			Overdue:       row.NextDueDate.Before(today),
		}
		if user.Email != nil {
			msg.Email = *user.Email
		}
		if user.PushToken != nil {
			msg.PushToken = *user.PushToken
		}

		if err := s.producer.SendReminder(msg); err != nil {
			log.ErrorContext(ctx, "send reminder message error", "user_vaccine_id", row.ID, "err", err)
			continue
		}
		sent++
	}

	log.InfoContext(ctx, "ReminderJob finished", "sent_count", sent)
}
