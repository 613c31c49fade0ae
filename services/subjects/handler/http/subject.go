package http

import (
	"errors"
	"net/http"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/subjects"
	"github.com/labstack/echo/v4"
)

// SubjectHandler handles HTTP requests for subjects
type SubjectHandler struct {
	subjectUC subjects.SubjectUC
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(subjectUC subjects.SubjectUC) *SubjectHandler {
	return &SubjectHandler{subjectUC: subjectUC}
}

// AddSubject creates a subject
func (h *SubjectHandler) AddSubject(c echo.Context, p *models.Principal) error {
	var req models.SubjectRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	subject, err := h.subjectUC.AddSubject(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Subject added successfully", subject)
}

// ListSubjects returns every subject
func (h *SubjectHandler) ListSubjects(c echo.Context, p *models.Principal) error {
	list, err := h.subjectUC.ListSubjects(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Subjects retrieved successfully", list)
}

// AssignStudent links a student to a subject
func (h *SubjectHandler) AssignStudent(c echo.Context, p *models.Principal) error {
	var req models.AssignmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.subjectUC.AssignStudent(c.Request().Context(), &req); err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Student assigned to subject successfully", req)
}

// MySubjects returns the logged-in student's subjects
func (h *SubjectHandler) MySubjects(c echo.Context, p *models.Principal) error {
	list, err := h.subjectUC.ListStudentSubjects(c.Request().Context(), p.ID)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Subjects retrieved successfully", list)
}

func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, subjects.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, subjects.ErrDuplicateSubject):
		return utils.ConflictResponse(c, "Subject already exists.")
	case errors.Is(err, subjects.ErrAlreadyAssigned):
		return utils.ConflictResponse(c, "Student is already assigned to this subject.")
	case errors.Is(err, subjects.ErrNotFound):
		return utils.NotFoundResponse(c, "Student or subject not found")
	}

	logger.Error("Subject request failed", logger.String("path", c.Path()), logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "")
}
