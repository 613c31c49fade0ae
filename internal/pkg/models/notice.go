package models

import "time"

// Notice is an announcement published by an admin
type Notice struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	PublishedAt time.Time `json:"published_at" db:"published_at"`
}

// NoticeRequest represents a create or update payload
type NoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
