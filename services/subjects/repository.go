package subjects

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/subjects SubjectRepo

// SubjectRepo persists subjects and student assignments
type SubjectRepo interface {
	Create(ctx context.Context, subject *models.Subject) error
	List(ctx context.Context) ([]*models.Subject, error)
	Assign(ctx context.Context, studentID, subjectID int64) error
	ListForStudent(ctx context.Context, studentID int64) ([]*models.Subject, error)
}
