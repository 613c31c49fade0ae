package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/notices"
)

// Create inserts a notice and fills in its id and publish time
func (r *NoticeRepo) Create(ctx context.Context, notice *models.Notice) error {
	query := `
		INSERT INTO notices (title, content)
		VALUES ($1, $2)
		RETURNING id, published_at`

	if err := r.db.QueryRowxContext(ctx, query, notice.Title, notice.Content).
		Scan(&notice.ID, &notice.PublishedAt); err != nil {
		return fmt.Errorf("failed to create notice: %w", err)
	}
	return nil
}

// List returns all notices, newest first
func (r *NoticeRepo) List(ctx context.Context) ([]*models.Notice, error) {
	query := `SELECT id, title, content, published_at FROM notices ORDER BY published_at DESC`

	notices := []*models.Notice{}
	if err := r.db.SelectContext(ctx, &notices, query); err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return notices, nil
}

// GetByID retrieves a notice by id
func (r *NoticeRepo) GetByID(ctx context.Context, id int64) (*models.Notice, error) {
	query := `SELECT id, title, content, published_at FROM notices WHERE id = $1`

	var notice models.Notice
	if err := r.db.GetContext(ctx, &notice, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notices.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}
	return &notice, nil
}

// Update rewrites a notice's title and content
func (r *NoticeRepo) Update(ctx context.Context, notice *models.Notice) error {
	query := `UPDATE notices SET title = $1, content = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, notice.Title, notice.Content, notice.ID)
	if err != nil {
		return fmt.Errorf("failed to update notice: %w", err)
	}
	return requireRow(result)
}

// Delete removes a notice
func (r *NoticeRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return notices.ErrNotFound
	}
	return nil
}
