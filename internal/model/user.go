package model

import (
	"time"
)

type User struct {
	ID                  uint64   `gorm:"primaryKey"`
	Email               *string  `gorm:"type:varchar(100);uniqueIndex:idx_email"`
	Password            *string  `gorm:"type:varchar(255)"`
	Name                string   `gorm:"type:varchar(100);not null"`
	DateOfBirth         time.Time `gorm:"type:date;not null"`
	Gender              *string  `gorm:"type:varchar(10)"`
	Address             *string  `gorm:"type:varchar(255)"`
	Pincode             *string  `gorm:"type:varchar(10)"`
	MedicalConditions   []string `gorm:"type:json;serializer:json"`
	PushToken           *string  `gorm:"type:varchar(255)"`
	FamilyAdminID       *uint64  `gorm:"index:idx_family_admin"`
	RelationshipToAdmin *string  `gorm:"type:varchar(30)"`
	IsDelete            bool     `gorm:"type:tinyint(1);default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	UserRoles []UserRole `gorm:"foreignKey:UserID;references:ID"`
	Members   []User     `gorm:"foreignKey:FamilyAdminID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
