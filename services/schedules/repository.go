package schedules

import (
	"context"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/schedules ScheduleRepo

// ScheduleRepo persists exam schedules. Reads join in the exam and subject names.
type ScheduleRepo interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	List(ctx context.Context) ([]*models.Schedule, error)
	GetByID(ctx context.Context, id int64) (*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id int64) error
	ListUpcoming(ctx context.Context, after time.Time) ([]*models.Schedule, error)
	ListForStudent(ctx context.Context, studentID int64, after time.Time) ([]*models.Schedule, error)
}
