package http

import (
	"net/http"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
	"github.com/labstack/echo/v4"
)

// ProfileHandler serves a student's own profile
type ProfileHandler struct {
	accountUC accounts.AccountUC
	sessions  Sessions
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(accountUC accounts.AccountUC, sessions Sessions) *ProfileHandler {
	return &ProfileHandler{
		accountUC: accountUC,
		sessions:  sessions,
	}
}

// GetProfile returns the logged-in student's account
func (h *ProfileHandler) GetProfile(c echo.Context, p *models.Principal) error {
	account, err := h.accountUC.GetProfile(c.Request().Context(), p.ID)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", account)
}

// UpdateProfile edits the logged-in student's account and refreshes the
// principal held by the session
func (h *ProfileHandler) UpdateProfile(c echo.Context, p *models.Principal) error {
	var req models.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ctx := c.Request().Context()
	account, err := h.accountUC.UpdateProfile(ctx, p.ID, &req)
	if err != nil {
		return errorResponse(c, err)
	}
	account.Kind = models.KindStudent

	if sess, err := h.sessions.Load(ctx, c.Request()); err == nil && sess != nil {
		sess.Principal = account.Principal()
		if err := h.sessions.Save(ctx, sess); err != nil {
			logger.Warn("Failed to refresh session principal",
				logger.AccountID(p.ID),
				logger.ErrorField(err),
			)
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", account)
}
