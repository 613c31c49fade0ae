package models

import "time"

// Exam is an assessment with its marking scheme
type Exam struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	TotalMarks   int       `json:"total_marks" db:"total_marks"`
	PassingMarks int       `json:"passing_marks" db:"passing_marks"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ExamRequest represents a create or update payload
type ExamRequest struct {
	Name         string `json:"name"`
	TotalMarks   int    `json:"total_marks"`
	PassingMarks int    `json:"passing_marks"`
}
