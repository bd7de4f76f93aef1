package model

import (
	"time"
)

// Vaccine 疫苗目录条目
// BrandName 为空表示同类疫苗的通用占位条目，只用于初始推荐，不携带剂次间隔
type Vaccine struct {
	ID                      uint64  `gorm:"primaryKey"`
	GenericName             string  `gorm:"type:varchar(100);not null;index:idx_generic_name"`
	BrandName               *string `gorm:"type:varchar(100)"`
	Description             *string `gorm:"type:varchar(500)"`
	FirstDoseEligibilityAge int     `gorm:"not null;default:0"` // 单位：月
	PrimaryDoseCount        int     `gorm:"not null;default:1"`
	InterDoseIntervals      []int   `gorm:"type:json;serializer:json"` // 单位：天，长度 PrimaryDoseCount-1
	HasRecurringBooster     bool    `gorm:"type:tinyint(1);default:0"`
	BoosterIntervalYears    int     `gorm:"not null;default:0"`
	IsTravelVaccine         bool    `gorm:"type:tinyint(1);default:0"`
	Region                  *string `gorm:"type:varchar(100)"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (Vaccine) TableName() string {
	return "vaccines"
}

// IsGeneric 判断是否为通用占位条目
func (v *Vaccine) IsGeneric() bool {
	return v.BrandName == nil
}
