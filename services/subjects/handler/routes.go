package handler

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/middleware"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/services/subjects/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the subject HTTP handlers
type Handler struct {
	subjectHandler *http.SubjectHandler
	gate           *session.Gate
}

// NewHandler creates and initializes all handlers
func NewHandler(subjectHandler *http.SubjectHandler, gate *session.Gate) *Handler {
	return &Handler{
		subjectHandler: subjectHandler,
		gate:           gate,
	}
}

// RegisterRoutes registers the admin and student subject routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin/subjects", middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindAdmin))
	admin.POST("", middleware.WithPrincipal(h.subjectHandler.AddSubject))
	admin.GET("", middleware.WithPrincipal(h.subjectHandler.ListSubjects))
	admin.POST("/assign", middleware.WithPrincipal(h.subjectHandler.AssignStudent))

	student := e.Group("/student/subjects", middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindStudent))
	student.GET("", middleware.WithPrincipal(h.subjectHandler.MySubjects))
}
