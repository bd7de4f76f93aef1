package dto

import "time"

type CreateContentDTO struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	ContentType string  `json:"contentType" validate:"required,oneof=article video infographic"`
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
}

type UpdateContentDTO struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	ContentType *string `json:"contentType,omitempty" validate:"omitempty,oneof=article video infographic"`
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
}

type ContentDTO struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ContentType string     `json:"contentType"`
	URL         *string    `json:"url,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}
