package notices

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/notices NoticeUC

// NoticeUC manages announcements
type NoticeUC interface {
	CreateNotice(ctx context.Context, req *models.NoticeRequest) (*models.Notice, error)
	ListNotices(ctx context.Context) ([]*models.Notice, error)
	GetNotice(ctx context.Context, id int64) (*models.Notice, error)
	UpdateNotice(ctx context.Context, id int64, req *models.NoticeRequest) (*models.Notice, error)
	DeleteNotice(ctx context.Context, id int64) error
}
