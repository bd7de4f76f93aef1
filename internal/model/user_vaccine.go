package model

import (
	"time"
)

// UserVaccine 用户疫苗进度行，每个用户每个疫苗族唯一
// VaccineID 可变：选定品牌后从通用条目改指品牌条目
type UserVaccine struct {
	ID             uint64     `gorm:"primaryKey"`
	UserID         uint64     `gorm:"not null;uniqueIndex:idx_user_vaccine,priority:1"`
	VaccineID      uint64     `gorm:"not null;uniqueIndex:idx_user_vaccine,priority:2"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending'"`
	CompletedDoses int        `gorm:"not null;default:0"`
	LastDoseDate   *time.Time `gorm:"type:date"`
	NextDueDate    *time.Time `gorm:"type:date"`
	BrandTakenID   *uint64    // 补录时实际接种的品牌
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Vaccine Vaccine `gorm:"foreignKey:VaccineID;references:ID"`
}

func (UserVaccine) TableName() string {
	return "user_vaccines"
}
