package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/exams"
	"github.com/labstack/echo/v4"
)

// ExamHandler handles HTTP requests for exams
type ExamHandler struct {
	examUC exams.ExamUC
}

// NewExamHandler creates a new exam handler
func NewExamHandler(examUC exams.ExamUC) *ExamHandler {
	return &ExamHandler{examUC: examUC}
}

// CreateExam adds an exam
func (h *ExamHandler) CreateExam(c echo.Context, p *models.Principal) error {
	var req models.ExamRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	exam, err := h.examUC.CreateExam(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Exam created successfully", exam)
}

// ListExams returns every exam
func (h *ExamHandler) ListExams(c echo.Context, p *models.Principal) error {
	list, err := h.examUC.ListExams(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Exams retrieved successfully", list)
}

// GetExam returns one exam
func (h *ExamHandler) GetExam(c echo.Context, p *models.Principal) error {
	id, err := examID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid exam ID")
	}

	exam, err := h.examUC.GetExam(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Exam retrieved successfully", exam)
}

// UpdateExam edits an exam
func (h *ExamHandler) UpdateExam(c echo.Context, p *models.Principal) error {
	id, err := examID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid exam ID")
	}

	var req models.ExamRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	exam, err := h.examUC.UpdateExam(c.Request().Context(), id, &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Exam updated successfully", exam)
}

// DeleteExam removes an exam
func (h *ExamHandler) DeleteExam(c echo.Context, p *models.Principal) error {
	id, err := examID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid exam ID")
	}

	if err := h.examUC.DeleteExam(c.Request().Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Exam deleted successfully", nil)
}

func examID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, exams.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, exams.ErrDuplicateExam):
		return utils.ConflictResponse(c, "An exam with this name already exists.")
	case errors.Is(err, exams.ErrNotFound):
		return utils.NotFoundResponse(c, "Exam not found")
	}

	logger.Error("Exam request failed", logger.String("path", c.Path()), logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "")
}
