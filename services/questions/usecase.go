package questions

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/questions QuestionUC

// QuestionUC manages the question bank
type QuestionUC interface {
	CreateQuestion(ctx context.Context, req *models.QuestionRequest) (*models.Question, error)
	ListQuestions(ctx context.Context) ([]*models.Question, error)
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	UpdateQuestion(ctx context.Context, id int64, req *models.QuestionRequest) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
}
