package usecase

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/subjects"
)

// SubjectUC implements the subjects business logic
type SubjectUC struct {
	subjectRepo subjects.SubjectRepo
	cfg         *models.Config
}

// NewSubjectUC creates a new subject use case
func NewSubjectUC(subjectRepo subjects.SubjectRepo, cfg *models.Config) *SubjectUC {
	return &SubjectUC{
		subjectRepo: subjectRepo,
		cfg:         cfg,
	}
}
