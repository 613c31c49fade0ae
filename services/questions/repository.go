package questions

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/questions QuestionRepo

// QuestionRepo persists the question bank
type QuestionRepo interface {
	Create(ctx context.Context, question *models.Question) error
	List(ctx context.Context) ([]*models.Question, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id int64) error
}
