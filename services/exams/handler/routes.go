package handler

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/middleware"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/services/exams/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the exam HTTP handlers
type Handler struct {
	examHandler *http.ExamHandler
	gate        *session.Gate
}

// NewHandler creates and initializes all handlers
func NewHandler(examHandler *http.ExamHandler, gate *session.Gate) *Handler {
	return &Handler{
		examHandler: examHandler,
		gate:        gate,
	}
}

// RegisterRoutes registers the admin exam routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin/exams", middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindAdmin))
	admin.POST("", middleware.WithPrincipal(h.examHandler.CreateExam))
	admin.GET("", middleware.WithPrincipal(h.examHandler.ListExams))
	admin.GET("/:id", middleware.WithPrincipal(h.examHandler.GetExam))
	admin.PUT("/:id", middleware.WithPrincipal(h.examHandler.UpdateExam))
	admin.DELETE("/:id", middleware.WithPrincipal(h.examHandler.DeleteExam))
}
