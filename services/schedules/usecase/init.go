package usecase

import (
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/schedules"
)

// ScheduleUC implements the exam timetable business logic
type ScheduleUC struct {
	scheduleRepo schedules.ScheduleRepo
	cfg          *models.Config
	now          func() time.Time
}

// NewScheduleUC creates a new schedule use case
func NewScheduleUC(scheduleRepo schedules.ScheduleRepo, cfg *models.Config) *ScheduleUC {
	return &ScheduleUC{
		scheduleRepo: scheduleRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}
