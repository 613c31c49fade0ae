package usecase

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/questions"
)

// QuestionUC implements the question bank business logic
type QuestionUC struct {
	questionRepo questions.QuestionRepo
	cfg          *models.Config
}

// NewQuestionUC creates a new question use case
func NewQuestionUC(questionRepo questions.QuestionRepo, cfg *models.Config) *QuestionUC {
	return &QuestionUC{
		questionRepo: questionRepo,
		cfg:          cfg,
	}
}
