package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/notices"
	"github.com/labstack/echo/v4"
)

// NoticeHandler handles HTTP requests for notices
type NoticeHandler struct {
	noticeUC notices.NoticeUC
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(noticeUC notices.NoticeUC) *NoticeHandler {
	return &NoticeHandler{noticeUC: noticeUC}
}

// CreateNotice publishes a notice
func (h *NoticeHandler) CreateNotice(c echo.Context, p *models.Principal) error {
	var req models.NoticeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	notice, err := h.noticeUC.CreateNotice(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Notice published successfully", notice)
}

// ListNotices returns every notice. Admins and students share it.
func (h *NoticeHandler) ListNotices(c echo.Context, p *models.Principal) error {
	list, err := h.noticeUC.ListNotices(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notices retrieved successfully", list)
}

// GetNotice returns one notice
func (h *NoticeHandler) GetNotice(c echo.Context, p *models.Principal) error {
	id, err := noticeID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notice ID")
	}

	notice, err := h.noticeUC.GetNotice(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notice retrieved successfully", notice)
}

// UpdateNotice edits a notice
func (h *NoticeHandler) UpdateNotice(c echo.Context, p *models.Principal) error {
	id, err := noticeID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notice ID")
	}

	var req models.NoticeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	notice, err := h.noticeUC.UpdateNotice(c.Request().Context(), id, &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notice updated successfully", notice)
}

// DeleteNotice removes a notice
func (h *NoticeHandler) DeleteNotice(c echo.Context, p *models.Principal) error {
	id, err := noticeID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notice ID")
	}

	if err := h.noticeUC.DeleteNotice(c.Request().Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notice deleted successfully", nil)
}

func noticeID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, notices.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, notices.ErrNotFound):
		return utils.NotFoundResponse(c, "Notice not found")
	}

	logger.Error("Notice request failed", logger.String("path", c.Path()), logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "")
}
