package dto

type ReminderDTO struct {
	ID          string `json:"id"`
	VaccineName string `json:"vaccineName"`
	DueDate     string `json:"dueDate"`
	Overdue     bool   `json:"overdue"`
	Content     string `json:"content"`
	IsRead      bool   `json:"isRead"`
	CreatedAt   string `json:"createdAt"`
}
