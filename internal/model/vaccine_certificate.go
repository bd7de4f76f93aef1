package model

import (
	"time"
)

type VaccineCertificate struct {
	ID            uint64  `gorm:"primaryKey"`
	UserID        uint64  `gorm:"not null;index:idx_cert_user"`
	UserVaccineID *uint64 `gorm:"index:idx_cert_user_vaccine"`
	FileName      string  `gorm:"type:varchar(255);not null"`
	ObjectName    string  `gorm:"type:varchar(255);not null"`
	ContentType   string  `gorm:"type:varchar(100);not null"`
	Size          int64   `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (VaccineCertificate) TableName() string {
	return "vaccine_certificates"
}
