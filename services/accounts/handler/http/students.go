package http

import (
	"net/http"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
	"github.com/labstack/echo/v4"
)

// StudentHandler handles admin management of student accounts
type StudentHandler struct {
	accountUC accounts.AccountUC
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(accountUC accounts.AccountUC) *StudentHandler {
	return &StudentHandler{accountUC: accountUC}
}

// AddStudent creates a student account on behalf of an admin
func (h *StudentHandler) AddStudent(c echo.Context, p *models.Principal) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	account, err := h.accountUC.AddStudent(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}

	logger.Info("Student added by admin",
		logger.AccountID(account.ID),
		logger.Int64("admin_id", p.ID),
	)
	return utils.SuccessResponse(c, http.StatusCreated, "Student added successfully", account)
}

// ListStudents returns every student account
func (h *StudentHandler) ListStudents(c echo.Context, p *models.Principal) error {
	students, err := h.accountUC.ListStudents(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Students retrieved successfully", students)
}
