package kafka

// ReminderMessage 疫苗提醒消息，由定时任务生产，消费端负责邮件/推送与站内信落库
type ReminderMessage struct {
	UserID        uint64 `json:"userId"`
	UserVaccineID uint64 `json:"userVaccineId"`
	Email         string `json:"email"`
	PushToken     string `json:"pushToken"`
	VaccineName   string `json:"vaccineName"`
	DoseNumber    int    `json:"doseNumber"`
	DueDate       string `json:"dueDate"`
	Overdue       bool   `json:"overdue"`
}
