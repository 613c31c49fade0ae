package models

import "time"

// Schedule places an exam for a subject in a time slot. ExamName and
// SubjectName are filled from the joined rows on reads.
type Schedule struct {
	ID          int64     `json:"id" db:"id"`
	ExamID      int64     `json:"exam_id" db:"exam_id"`
	ExamName    string    `json:"exam_name" db:"exam_name"`
	SubjectID   int64     `json:"subject_id" db:"subject_id"`
	SubjectName string    `json:"subject_name" db:"subject_name"`
	StartsAt    time.Time `json:"starts_at" db:"starts_at"`
	EndsAt      time.Time `json:"ends_at" db:"ends_at"`
}

// ScheduleRequest represents a create or update payload. Times are RFC 3339.
type ScheduleRequest struct {
	ExamID    int64     `json:"exam_id"`
	SubjectID int64     `json:"subject_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
}
