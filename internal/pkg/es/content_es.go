package es

import "time"

// ContentES 写入 ES 的科普内容文档
type ContentES struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ContentType string    `json:"content_type"`
	URL         string    `json:"url,omitempty"`
	AdminID     uint64    `json:"admin_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
