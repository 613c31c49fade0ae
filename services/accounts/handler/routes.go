package handler

import (
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/middleware"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts/handler/http"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the account HTTP handlers
type Handler struct {
	authHandler    *http.AuthHandler
	profileHandler *http.ProfileHandler
	studentHandler *http.StudentHandler
	gate           *session.Gate
	redisClient    *redis.Client
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	profileHandler *http.ProfileHandler,
	studentHandler *http.StudentHandler,
	gate *session.Gate,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		studentHandler: studentHandler,
		gate:           gate,
		redisClient:    redisClient,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the public auth routes and the role-guarded
// account routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	limiter := middleware.IPRateLimiter(h.cfg.RateLimit.Limit, h.cfg.RateLimit.Period, h.redisClient)

	// Public routes, rate limited per client IP
	e.POST("/admin/register", h.authHandler.RegisterAdmin, limiter)
	e.POST("/student/register", h.authHandler.RegisterStudent, limiter)
	e.POST("/admin/login", h.authHandler.LoginAdmin, limiter)
	e.POST("/student/login", h.authHandler.LoginStudent, limiter)
	e.POST("/verify-otp", h.authHandler.VerifyOTP, limiter)
	e.POST("/resend-otp", h.authHandler.ResendOTP, limiter)
	e.POST("/logout", h.authHandler.Logout)

	// Admin routes
	e.GET("/adminHome", middleware.WithPrincipal(http.AdminHome),
		middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindAdmin))

	admin := e.Group("/admin", middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindAdmin))
	admin.POST("/students", middleware.WithPrincipal(h.studentHandler.AddStudent))
	admin.GET("/students", middleware.WithPrincipal(h.studentHandler.ListStudents))

	// Student routes
	student := e.Group("/student", middleware.RequireLogin(h.gate), middleware.RequireRole(h.gate, models.KindStudent))
	student.GET("/dashboard", middleware.WithPrincipal(http.StudentDashboard))
	student.GET("/profile", middleware.WithPrincipal(h.profileHandler.GetProfile))
	student.PUT("/profile", middleware.WithPrincipal(h.profileHandler.UpdateProfile))
}
