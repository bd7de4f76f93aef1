package model

import (
	"time"
)

// VaccinationRecord 纸质接种记录的手工导入条目，与进度行互不影响
type VaccinationRecord struct {
	ID              uint64    `gorm:"primaryKey"`
	UserID          uint64    `gorm:"not null;index:idx_record_user"`
	VaccineName     string    `gorm:"type:varchar(100);not null"`
	DoseNumber      int       `gorm:"not null;default:1"`
	VaccinationDate time.Time `gorm:"type:date;not null"`
	Location        *string   `gorm:"type:varchar(255)"`
	Notes           *string   `gorm:"type:varchar(500)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (VaccinationRecord) TableName() string {
	return "vaccination_records"
}
