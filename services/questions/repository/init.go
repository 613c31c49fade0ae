package repository

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// QuestionRepo implements questions.QuestionRepo over Postgres
type QuestionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewQuestionRepo creates a new question repository instance
func NewQuestionRepo(cfg *models.Config, db *sqlx.DB) *QuestionRepo {
	return &QuestionRepo{
		cfg: cfg,
		db:  db,
	}
}
