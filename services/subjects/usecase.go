package subjects

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/subjects SubjectUC

// SubjectUC manages subjects and who studies them
type SubjectUC interface {
	AddSubject(ctx context.Context, req *models.SubjectRequest) (*models.Subject, error)
	ListSubjects(ctx context.Context) ([]*models.Subject, error)
	AssignStudent(ctx context.Context, req *models.AssignmentRequest) error
	ListStudentSubjects(ctx context.Context, studentID int64) ([]*models.Subject, error)
}
