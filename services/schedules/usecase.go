package schedules

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/schedules ScheduleUC

// ScheduleUC manages the exam timetable
type ScheduleUC interface {
	CreateSchedule(ctx context.Context, req *models.ScheduleRequest) (*models.Schedule, error)
	ListSchedules(ctx context.Context) ([]*models.Schedule, error)
	GetSchedule(ctx context.Context, id int64) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, id int64, req *models.ScheduleRequest) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) error
	UpcomingSchedules(ctx context.Context) ([]*models.Schedule, error)
	StudentExams(ctx context.Context, studentID int64) ([]*models.Schedule, error)
}
