package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/database"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/exams"
)

const examColumns = "id, name, total_marks, passing_marks, created_at"

// Create inserts an exam and fills in its id and creation time
func (r *ExamRepo) Create(ctx context.Context, exam *models.Exam) error {
	query := `
		INSERT INTO exams (name, total_marks, passing_marks)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	if err := r.db.QueryRowxContext(ctx, query, exam.Name, exam.TotalMarks, exam.PassingMarks).
		Scan(&exam.ID, &exam.CreatedAt); err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return exams.ErrDuplicateExam
		}
		return fmt.Errorf("failed to create exam: %w", err)
	}
	return nil
}

// List returns all exams ordered by name
func (r *ExamRepo) List(ctx context.Context) ([]*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams ORDER BY name`

	list := []*models.Exam{}
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}
	return list, nil
}

// GetByID retrieves an exam by id
func (r *ExamRepo) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams WHERE id = $1`

	var exam models.Exam
	if err := r.db.GetContext(ctx, &exam, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exams.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	return &exam, nil
}

// Update rewrites an exam's name and marks
func (r *ExamRepo) Update(ctx context.Context, exam *models.Exam) error {
	query := `UPDATE exams SET name = $1, total_marks = $2, passing_marks = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, exam.Name, exam.TotalMarks, exam.PassingMarks, exam.ID)
	if err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return exams.ErrDuplicateExam
		}
		return fmt.Errorf("failed to update exam: %w", err)
	}
	return requireRow(result)
}

// Delete removes an exam along with its schedules
func (r *ExamRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exam: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return exams.ErrNotFound
	}
	return nil
}
