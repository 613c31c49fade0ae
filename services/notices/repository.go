package notices

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/notices NoticeRepo

// NoticeRepo persists notices
type NoticeRepo interface {
	Create(ctx context.Context, notice *models.Notice) error
	List(ctx context.Context) ([]*models.Notice, error)
	GetByID(ctx context.Context, id int64) (*models.Notice, error)
	Update(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id int64) error
}
