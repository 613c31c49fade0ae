package handler

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/middleware"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/services/questions/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the question bank HTTP handlers
type Handler struct {
	questionHandler *http.QuestionHandler
	gate            *session.Gate
}

// NewHandler creates and initializes all handlers
func NewHandler(questionHandler *http.QuestionHandler, gate *session.Gate) *Handler {
	return &Handler{
		questionHandler: questionHandler,
		gate:            gate,
	}
}

// RegisterRoutes registers the admin question routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin/questions", middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindAdmin))
	admin.POST("", middleware.WithPrincipal(h.questionHandler.CreateQuestion))
	admin.GET("", middleware.WithPrincipal(h.questionHandler.ListQuestions))
	admin.GET("/:id", middleware.WithPrincipal(h.questionHandler.GetQuestion))
	admin.PUT("/:id", middleware.WithPrincipal(h.questionHandler.UpdateQuestion))
	admin.DELETE("/:id", middleware.WithPrincipal(h.questionHandler.DeleteQuestion))
}
