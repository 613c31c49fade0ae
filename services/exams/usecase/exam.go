package usecase

import (
	"context"
	"strings"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/exams"
)

const maxNameLength = 255

// CreateExam registers a new exam
func (u *ExamUC) CreateExam(ctx context.Context, req *models.ExamRequest) (*models.Exam, error) {
	exam, err := validateExam(req)
	if err != nil {
		return nil, err
	}

	if err := u.examRepo.Create(ctx, exam); err != nil {
		return nil, err
	}

	logger.Info("Exam created", logger.Int64("exam_id", exam.ID))
	return exam, nil
}

// ListExams returns all exams
func (u *ExamUC) ListExams(ctx context.Context) ([]*models.Exam, error) {
	return u.examRepo.List(ctx)
}

// GetExam returns one exam
func (u *ExamUC) GetExam(ctx context.Context, id int64) (*models.Exam, error) {
	return u.examRepo.GetByID(ctx, id)
}

// UpdateExam rewrites an exam's name and marks
func (u *ExamUC) UpdateExam(ctx context.Context, id int64, req *models.ExamRequest) (*models.Exam, error) {
	changes, err := validateExam(req)
	if err != nil {
		return nil, err
	}

	exam, err := u.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	exam.Name, exam.TotalMarks, exam.PassingMarks = changes.Name, changes.TotalMarks, changes.PassingMarks

	if err := u.examRepo.Update(ctx, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

// DeleteExam removes an exam. Its schedules go with it.
func (u *ExamUC) DeleteExam(ctx context.Context, id int64) error {
	if err := u.examRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Exam deleted", logger.Int64("exam_id", id))
	return nil
}

func validateExam(req *models.ExamRequest) (*models.Exam, error) {
	name := strings.TrimSpace(req.Name)

	switch {
	case name == "":
		return nil, exams.InvalidInput("name is required")
	case len(name) > maxNameLength:
		return nil, exams.InvalidInput("name is too long")
	case req.TotalMarks <= 0:
		return nil, exams.InvalidInput("total marks must be positive")
	case req.PassingMarks <= 0:
		return nil, exams.InvalidInput("passing marks must be positive")
	case req.PassingMarks > req.TotalMarks:
		return nil, exams.InvalidInput("passing marks cannot exceed total marks")
	}
	return &models.Exam{Name: name, TotalMarks: req.TotalMarks, PassingMarks: req.PassingMarks}, nil
}
