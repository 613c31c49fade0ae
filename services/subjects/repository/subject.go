package repository

import (
	"context"
	"fmt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/database"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/subjects"
)

// Create inserts a subject and fills in its id and creation time
func (r *SubjectRepo) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name)
		VALUES ($1)
		RETURNING id, created_at`

	if err := r.db.QueryRowxContext(ctx, query, subject.Name).
		Scan(&subject.ID, &subject.CreatedAt); err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return subjects.ErrDuplicateSubject
		}
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}

// List returns all subjects ordered by name
func (r *SubjectRepo) List(ctx context.Context) ([]*models.Subject, error) {
	query := `SELECT id, name, created_at FROM subjects ORDER BY name`

	list := []*models.Subject{}
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	return list, nil
}

// Assign links a student to a subject
func (r *SubjectRepo) Assign(ctx context.Context, studentID, subjectID int64) error {
	query := `INSERT INTO student_subjects (student_id, subject_id) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, studentID, subjectID); err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return subjects.ErrAlreadyAssigned
		}
		if database.ForeignKeyViolation(err) {
			return subjects.ErrNotFound
		}
		return fmt.Errorf("failed to assign subject: %w", err)
	}
	return nil
}

// ListForStudent returns the subjects a student is assigned to
func (r *SubjectRepo) ListForStudent(ctx context.Context, studentID int64) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.created_at
		FROM subjects s
		JOIN student_subjects ss ON ss.subject_id = s.id
		WHERE ss.student_id = $1
		ORDER BY s.name`

	list := []*models.Subject{}
	if err := r.db.SelectContext(ctx, &list, query, studentID); err != nil {
		return nil, fmt.Errorf("failed to list student subjects: %w", err)
	}
	return list, nil
}
