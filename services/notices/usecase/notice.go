package usecase

import (
	"context"
	"strings"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/notices"
)

const maxTitleLength = 255

// CreateNotice publishes a new notice
func (u *NoticeUC) CreateNotice(ctx context.Context, req *models.NoticeRequest) (*models.Notice, error) {
	notice, err := validateNotice(req)
	if err != nil {
		return nil, err
	}

	if err := u.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}

	logger.Info("Notice published", logger.Int64("notice_id", notice.ID))
	return notice, nil
}

// ListNotices returns all notices, newest first
func (u *NoticeUC) ListNotices(ctx context.Context) ([]*models.Notice, error) {
	return u.noticeRepo.List(ctx)
}

// GetNotice returns one notice
func (u *NoticeUC) GetNotice(ctx context.Context, id int64) (*models.Notice, error) {
	return u.noticeRepo.GetByID(ctx, id)
}

// UpdateNotice rewrites a notice's title and content
func (u *NoticeUC) UpdateNotice(ctx context.Context, id int64, req *models.NoticeRequest) (*models.Notice, error) {
	changes, err := validateNotice(req)
	if err != nil {
		return nil, err
	}

	notice, err := u.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	notice.Title, notice.Content = changes.Title, changes.Content

	if err := u.noticeRepo.Update(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// DeleteNotice removes a notice
func (u *NoticeUC) DeleteNotice(ctx context.Context, id int64) error {
	if err := u.noticeRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Notice deleted", logger.Int64("notice_id", id))
	return nil
}

func validateNotice(req *models.NoticeRequest) (*models.Notice, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	switch {
	case title == "":
		return nil, notices.InvalidInput("title is required")
	case len(title) > maxTitleLength:
		return nil, notices.InvalidInput("title is too long")
	case content == "":
		return nil, notices.InvalidInput("content is required")
	}
	return &models.Notice{Title: title, Content: content}, nil
}
