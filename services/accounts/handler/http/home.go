package http

import (
	"net/http"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/labstack/echo/v4"
)

// AdminHome is the admin landing page
func AdminHome(c echo.Context, p *models.Principal) error {
	return utils.SuccessResponse(c, http.StatusOK, "Welcome, "+p.Name, p)
}

// StudentDashboard is the student landing page
func StudentDashboard(c echo.Context, p *models.Principal) error {
	return utils.SuccessResponse(c, http.StatusOK, "Welcome, "+p.Name, p)
}
