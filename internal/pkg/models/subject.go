package models

import "time"

// Subject is a course students can be assigned to
type Subject struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SubjectRequest represents a new subject
type SubjectRequest struct {
	Name string `json:"name"`
}

// AssignmentRequest links a student to a subject
type AssignmentRequest struct {
	StudentID int64 `json:"student_id"`
	SubjectID int64 `json:"subject_id"`
}
