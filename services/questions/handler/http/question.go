package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/questions"
	"github.com/labstack/echo/v4"
)

// QuestionHandler handles HTTP requests for questions
type QuestionHandler struct {
	questionUC questions.QuestionUC
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionUC questions.QuestionUC) *QuestionHandler {
	return &QuestionHandler{questionUC: questionUC}
}

// CreateQuestion adds a question to the bank
func (h *QuestionHandler) CreateQuestion(c echo.Context, p *models.Principal) error {
	var req models.QuestionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	question, err := h.questionUC.CreateQuestion(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Question added successfully", question)
}

// ListQuestions returns the whole bank
func (h *QuestionHandler) ListQuestions(c echo.Context, p *models.Principal) error {
	list, err := h.questionUC.ListQuestions(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Questions retrieved successfully", list)
}

// GetQuestion returns one question
func (h *QuestionHandler) GetQuestion(c echo.Context, p *models.Principal) error {
	id, err := questionID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid question ID")
	}

	question, err := h.questionUC.GetQuestion(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Question retrieved successfully", question)
}

// UpdateQuestion edits a question
func (h *QuestionHandler) UpdateQuestion(c echo.Context, p *models.Principal) error {
	id, err := questionID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid question ID")
	}

	var req models.QuestionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	question, err := h.questionUC.UpdateQuestion(c.Request().Context(), id, &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Question updated successfully", question)
}

// DeleteQuestion removes a question
func (h *QuestionHandler) DeleteQuestion(c echo.Context, p *models.Principal) error {
	id, err := questionID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid question ID")
	}

	if err := h.questionUC.DeleteQuestion(c.Request().Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Question deleted successfully", nil)
}

func questionID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, questions.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, questions.ErrDuplicateQuestion):
		return utils.ConflictResponse(c, "A question with this text already exists.")
	case errors.Is(err, questions.ErrNotFound):
		return utils.NotFoundResponse(c, "Question not found")
	}

	logger.Error("Question request failed", logger.String("path", c.Path()), logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "")
}
