package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/database"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/questions"
)

const questionColumns = "id, question, option1, option2, option3, option4, answer, created_at"

// Create inserts a question and fills in its id and creation time
func (r *QuestionRepo) Create(ctx context.Context, q *models.Question) error {
	query := `
		INSERT INTO questions (question, option1, option2, option3, option4, answer)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	if err := r.db.QueryRowxContext(ctx, query, q.Text, q.Option1, q.Option2, q.Option3, q.Option4, q.Answer).
		Scan(&q.ID, &q.CreatedAt); err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return questions.ErrDuplicateQuestion
		}
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// List returns the whole bank in insertion order
func (r *QuestionRepo) List(ctx context.Context) ([]*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id`

	list := []*models.Question{}
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return list, nil
}

// GetByID retrieves a question by id
func (r *QuestionRepo) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	var q models.Question
	if err := r.db.GetContext(ctx, &q, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, questions.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &q, nil
}

// Update rewrites a question with its options and answer
func (r *QuestionRepo) Update(ctx context.Context, q *models.Question) error {
	query := `
		UPDATE questions
		SET question = $1, option1 = $2, option2 = $3, option3 = $4, option4 = $5, answer = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query, q.Text, q.Option1, q.Option2, q.Option3, q.Option4, q.Answer, q.ID)
	if err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return questions.ErrDuplicateQuestion
		}
		return fmt.Errorf("failed to update question: %w", err)
	}
	return requireRow(result)
}

// Delete removes a question
func (r *QuestionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return questions.ErrNotFound
	}
	return nil
}
