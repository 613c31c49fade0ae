package repository

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// ScheduleRepo implements schedules.ScheduleRepo over Postgres
type ScheduleRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewScheduleRepo creates a new schedule repository instance
func NewScheduleRepo(cfg *models.Config, db *sqlx.DB) *ScheduleRepo {
	return &ScheduleRepo{
		cfg: cfg,
		db:  db,
	}
}
