package notify

import (
	"VaccineVault/internal/api/config"
	"fmt"
	"net/smtp"
	"strings"
)

// EmailSender 通过 SMTP 发送提醒邮件
type EmailSender struct {
	cfg config.SMTPConfig
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	return &EmailSender{cfg: cfg.SMTP}
}

func (s *EmailSender) SendDoseReminder(to, vaccineName, dueDate string, doseNumber int, overdue bool) error {
	subject := fmt.Sprintf("疫苗接种提醒：%s 第 %d 剂", vaccineName, doseNumber)
	body := fmt.Sprintf("您的疫苗 %s 第 %d 剂应于 %s 接种，请提前安排时间。", vaccineName, doseNumber, dueDate)
	if overdue {
		subject = fmt.Sprintf("疫苗逾期提醒：%s 第 %d 剂", vaccineName, doseNumber)
		body = fmt.Sprintf("您的疫苗 %s 第 %d 剂已于 %s 到期，请尽快前往接种点补种。", vaccineName, doseNumber, dueDate)
	}
	return s.send(to, subject, body)
}

func (s *EmailSender) send(to, subject, body string) error {
	var msg strings.Builder
	msg.WriteString("From: " + s.cfg.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}
