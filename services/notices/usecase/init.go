package usecase

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/notices"
)

// NoticeUC implements the notices business logic
type NoticeUC struct {
	noticeRepo notices.NoticeRepo
	cfg        *models.Config
}

// NewNoticeUC creates a new notice use case
func NewNoticeUC(noticeRepo notices.NoticeRepo, cfg *models.Config) *NoticeUC {
	return &NoticeUC{
		noticeRepo: noticeRepo,
		cfg:        cfg,
	}
}
