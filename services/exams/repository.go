package exams

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/exams ExamRepo

// ExamRepo persists exams
type ExamRepo interface {
	Create(ctx context.Context, exam *models.Exam) error
	List(ctx context.Context) ([]*models.Exam, error)
	GetByID(ctx context.Context, id int64) (*models.Exam, error)
	Update(ctx context.Context, exam *models.Exam) error
	Delete(ctx context.Context, id int64) error
}
