package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/database"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/schedules"
)

const selectSchedules = `
	SELECT sc.id, sc.exam_id, e.name AS exam_name, sc.subject_id, s.name AS subject_name,
	       sc.starts_at, sc.ends_at
	FROM schedules sc
	JOIN exams e ON e.id = sc.exam_id
	JOIN subjects s ON s.id = sc.subject_id`

// Create inserts a schedule and fills in its id
func (r *ScheduleRepo) Create(ctx context.Context, schedule *models.Schedule) error {
	query := `
		INSERT INTO schedules (exam_id, subject_id, starts_at, ends_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if err := r.db.QueryRowxContext(ctx, query, schedule.ExamID, schedule.SubjectID, schedule.StartsAt, schedule.EndsAt).
		Scan(&schedule.ID); err != nil {
		if database.ForeignKeyViolation(err) {
			return schedules.ErrUnknownExamOrSubject
		}
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

// List returns every schedule, latest first
func (r *ScheduleRepo) List(ctx context.Context) ([]*models.Schedule, error) {
	query := selectSchedules + ` ORDER BY sc.starts_at DESC`

	list := []*models.Schedule{}
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return list, nil
}

// GetByID retrieves a schedule by id
func (r *ScheduleRepo) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	query := selectSchedules + ` WHERE sc.id = $1`

	var schedule models.Schedule
	if err := r.db.GetContext(ctx, &schedule, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, schedules.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return &schedule, nil
}

// Update moves a schedule to another exam, subject or slot
func (r *ScheduleRepo) Update(ctx context.Context, schedule *models.Schedule) error {
	query := `UPDATE schedules SET exam_id = $1, subject_id = $2, starts_at = $3, ends_at = $4 WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query, schedule.ExamID, schedule.SubjectID, schedule.StartsAt, schedule.EndsAt, schedule.ID)
	if err != nil {
		if database.ForeignKeyViolation(err) {
			return schedules.ErrUnknownExamOrSubject
		}
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return requireRow(result)
}

// Delete removes a schedule
func (r *ScheduleRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return requireRow(result)
}

// ListUpcoming returns the schedules starting after the given time, soonest first
func (r *ScheduleRepo) ListUpcoming(ctx context.Context, after time.Time) ([]*models.Schedule, error) {
	query := selectSchedules + ` WHERE sc.starts_at > $1 ORDER BY sc.starts_at ASC`

	list := []*models.Schedule{}
	if err := r.db.SelectContext(ctx, &list, query, after); err != nil {
		return nil, fmt.Errorf("failed to list upcoming schedules: %w", err)
	}
	return list, nil
}

// ListForStudent returns the upcoming schedules of the subjects a student is assigned to
func (r *ScheduleRepo) ListForStudent(ctx context.Context, studentID int64, after time.Time) ([]*models.Schedule, error) {
	query := selectSchedules + `
	JOIN student_subjects ss ON ss.subject_id = sc.subject_id
	WHERE ss.student_id = $1 AND sc.starts_at > $2
	ORDER BY sc.starts_at ASC`

	list := []*models.Schedule{}
	if err := r.db.SelectContext(ctx, &list, query, studentID, after); err != nil {
		return nil, fmt.Errorf("failed to list student schedules: %w", err)
	}
	return list, nil
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return schedules.ErrNotFound
	}
	return nil
}
