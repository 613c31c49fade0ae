package exams

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/exams ExamUC

// ExamUC manages exams and their marking schemes
type ExamUC interface {
	CreateExam(ctx context.Context, req *models.ExamRequest) (*models.Exam, error)
	ListExams(ctx context.Context) ([]*models.Exam, error)
	GetExam(ctx context.Context, id int64) (*models.Exam, error)
	UpdateExam(ctx context.Context, id int64, req *models.ExamRequest) (*models.Exam, error)
	DeleteExam(ctx context.Context, id int64) error
}
