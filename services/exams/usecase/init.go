package usecase

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/exams"
)

// ExamUC implements the exams business logic
type ExamUC struct {
	examRepo exams.ExamRepo
	cfg      *models.Config
}

// NewExamUC creates a new exam use case
func NewExamUC(examRepo exams.ExamRepo, cfg *models.Config) *ExamUC {
	return &ExamUC{
		examRepo: examRepo,
		cfg:      cfg,
	}
}
