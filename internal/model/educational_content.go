package model

import (
	"time"
)

type EducationalContent struct {
	ID          uint64  `gorm:"primaryKey"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"not null"`
	ContentType string  `gorm:"type:varchar(30);not null"` // article / video / infographic
	URL         *string `gorm:"type:varchar(500)"`
	AdminID     uint64  `gorm:"not null;index:idx_content_admin"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EducationalContent) TableName() string {
	return "educational_contents"
}
