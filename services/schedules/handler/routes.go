package handler

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/middleware"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/services/schedules/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the schedule HTTP handlers
type Handler struct {
	scheduleHandler *http.ScheduleHandler
	gate            *session.Gate
}

// NewHandler creates and initializes all handlers
func NewHandler(scheduleHandler *http.ScheduleHandler, gate *session.Gate) *Handler {
	return &Handler{
		scheduleHandler: scheduleHandler,
		gate:            gate,
	}
}

// RegisterRoutes registers the admin timetable routes and the student exam views
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin/schedules", middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindAdmin))
	admin.POST("", middleware.WithPrincipal(h.scheduleHandler.CreateSchedule))
	admin.GET("", middleware.WithPrincipal(h.scheduleHandler.ListSchedules))
	admin.GET("/:id", middleware.WithPrincipal(h.scheduleHandler.GetSchedule))
	admin.PUT("/:id", middleware.WithPrincipal(h.scheduleHandler.UpdateSchedule))
	admin.DELETE("/:id", middleware.WithPrincipal(h.scheduleHandler.DeleteSchedule))

	studentOnly := []echo.MiddlewareFunc{middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindStudent)}
	e.GET("/student/schedule", middleware.WithPrincipal(h.scheduleHandler.UpcomingSchedules), studentOnly...)
	e.GET("/student/exams", middleware.WithPrincipal(h.scheduleHandler.MyExams), studentOnly...)
}
