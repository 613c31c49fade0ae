package usecase

import (
	"context"
	"strings"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/questions"
)

// CreateQuestion adds a question to the bank
func (u *QuestionUC) CreateQuestion(ctx context.Context, req *models.QuestionRequest) (*models.Question, error) {
	q, err := validateQuestion(req)
	if err != nil {
		return nil, err
	}

	if err := u.questionRepo.Create(ctx, q); err != nil {
		return nil, err
	}

	logger.Info("Question added", logger.Int64("question_id", q.ID))
	return q, nil
}

// ListQuestions returns the whole bank
func (u *QuestionUC) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	return u.questionRepo.List(ctx)
}

// GetQuestion returns one question
func (u *QuestionUC) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	return u.questionRepo.GetByID(ctx, id)
}

// UpdateQuestion replaces a question's text, options and answer
func (u *QuestionUC) UpdateQuestion(ctx context.Context, id int64, req *models.QuestionRequest) (*models.Question, error) {
	changes, err := validateQuestion(req)
	if err != nil {
		return nil, err
	}

	q, err := u.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	changes.ID, changes.CreatedAt = q.ID, q.CreatedAt

	if err := u.questionRepo.Update(ctx, changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// DeleteQuestion removes a question
func (u *QuestionUC) DeleteQuestion(ctx context.Context, id int64) error {
	if err := u.questionRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Question deleted", logger.Int64("question_id", id))
	return nil
}

func validateQuestion(req *models.QuestionRequest) (*models.Question, error) {
	q := &models.Question{
		Text:    strings.TrimSpace(req.Text),
		Option1: strings.TrimSpace(req.Option1),
		Option2: strings.TrimSpace(req.Option2),
		Option3: strings.TrimSpace(req.Option3),
		Option4: strings.TrimSpace(req.Option4),
		Answer:  strings.TrimSpace(req.Answer),
	}

	if q.Text == "" {
		return nil, questions.InvalidInput("question is required")
	}
	for _, option := range q.Options() {
		if option == "" {
			return nil, questions.InvalidInput("all four options are required")
		}
	}
	if q.Answer == "" {
		return nil, questions.InvalidInput("answer is required")
	}
	for _, option := range q.Options() {
		if option == q.Answer {
			return q, nil
		}
	}
	return nil, questions.InvalidInput("the answer must be one of the provided options")
}
