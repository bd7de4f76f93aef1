package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReminderBoxModel 站内提醒消息模型
type ReminderBoxModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        uint64             `bson:"user_id" json:"userId"`                // 提醒接收者ID
	UserVaccineID uint64             `bson:"user_vaccine_id" json:"userVaccineId"` // 关联的接种进度行ID
	VaccineName   string             `bson:"vaccine_name" json:"vaccineName"`      // 疫苗通用名
	DueDate       string             `bson:"due_date" json:"dueDate"`              // 应接种日期 YYYY-MM-DD
	Overdue       bool               `bson:"overdue" json:"overdue"`               // 是否已逾期
	Content       string             `bson:"content" json:"content"`               // 提醒文案
	IsRead        bool               `bson:"is_read" json:"isRead"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}
