package repository

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// ExamRepo implements exams.ExamRepo over Postgres
type ExamRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewExamRepo creates a new exam repository instance
func NewExamRepo(cfg *models.Config, db *sqlx.DB) *ExamRepo {
	return &ExamRepo{
		cfg: cfg,
		db:  db,
	}
}
