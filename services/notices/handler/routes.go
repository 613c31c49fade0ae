package handler

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/middleware"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/services/notices/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the notice HTTP handlers
type Handler struct {
	noticeHandler *http.NoticeHandler
	gate          *session.Gate
}

// NewHandler creates and initializes all handlers
func NewHandler(noticeHandler *http.NoticeHandler, gate *session.Gate) *Handler {
	return &Handler{
		noticeHandler: noticeHandler,
		gate:          gate,
	}
}

// RegisterRoutes registers the admin and student notice routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin/notices", middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindAdmin))
	admin.POST("", middleware.WithPrincipal(h.noticeHandler.CreateNotice))
	admin.GET("", middleware.WithPrincipal(h.noticeHandler.ListNotices))
	admin.GET("/:id", middleware.WithPrincipal(h.noticeHandler.GetNotice))
	admin.PUT("/:id", middleware.WithPrincipal(h.noticeHandler.UpdateNotice))
	admin.DELETE("/:id", middleware.WithPrincipal(h.noticeHandler.DeleteNotice))

	student := e.Group("/student/notices", middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindStudent))
	student.GET("", middleware.WithPrincipal(h.noticeHandler.ListNotices))
}
