package repository

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// NoticeRepo implements notices.NoticeRepo over Postgres
type NoticeRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNoticeRepo creates a new notice repository instance
func NewNoticeRepo(cfg *models.Config, db *sqlx.DB) *NoticeRepo {
	return &NoticeRepo{
		cfg: cfg,
		db:  db,
	}
}
