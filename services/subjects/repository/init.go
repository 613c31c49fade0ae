package repository

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// SubjectRepo implements subjects.SubjectRepo over Postgres
type SubjectRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSubjectRepo creates a new subject repository instance
func NewSubjectRepo(cfg *models.Config, db *sqlx.DB) *SubjectRepo {
	return &SubjectRepo{
		cfg: cfg,
		db:  db,
	}
}
