package http

import (
	"net/http"
	"strings"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration, login, verification and logout
type AuthHandler struct {
	accountUC accounts.AccountUC
	sessions  Sessions
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUC accounts.AccountUC, sessions Sessions) *AuthHandler {
	return &AuthHandler{
		accountUC: accountUC,
		sessions:  sessions,
	}
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Principal *models.Principal `json:"principal"`
	Redirect  string            `json:"redirect"`
}

// RedirectResponse names the page the client should go to next
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

// VerifyResponse is returned by verify-otp
type VerifyResponse struct {
	*models.VerificationResult
	Redirect string `json:"redirect,omitempty"`
}

// RegisterAdmin handles admin self-registration
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	return h.register(c, models.KindAdmin)
}

// RegisterStudent handles student self-registration
func (h *AuthHandler) RegisterStudent(c echo.Context) error {
	return h.register(c, models.KindStudent)
}

func (h *AuthHandler) register(c echo.Context, kind models.Kind) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ctx := c.Request().Context()
	result, err := h.accountUC.Register(ctx, kind, &req)
	if err != nil {
		return errorResponse(c, err)
	}

	sess := currentSession(ctx, h.sessions, c.Request())
	sess.Principal = nil
	sess.Pending = result.Pending
	if err := h.sessions.Issue(ctx, c.Response(), sess); err != nil {
		logger.Error("Failed to issue session", logger.Kind(kind), logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusCreated,
		"Registration successful. Check your email and phone for OTPs.", result)
}

// LoginAdmin handles admin login
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	return h.login(c, models.KindAdmin)
}

// LoginStudent handles student login
func (h *AuthHandler) LoginStudent(c echo.Context) error {
	return h.login(c, models.KindStudent)
}

func (h *AuthHandler) login(c echo.Context, kind models.Kind) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ctx := c.Request().Context()
	result, err := h.accountUC.Login(ctx, kind, &req)
	if err != nil {
		return errorResponse(c, err)
	}

	sess := currentSession(ctx, h.sessions, c.Request())
	if result.RequiresVerification {
		sess.Principal = nil
		sess.Pending = &models.PendingVerification{Email: result.Email, Contact: result.Contact, Kind: kind}
	} else {
		sess.Pending = nil
		sess.Principal = result.Account.Principal()
	}

	if err := h.sessions.Issue(ctx, c.Response(), sess); err != nil {
		logger.Error("Failed to issue session", logger.Kind(kind), logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	if result.RequiresVerification {
		return utils.SuccessResponse(c, http.StatusAccepted,
			"Please verify your email and contact before logging in.", result)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		Principal: sess.Principal,
		Redirect:  session.HomeFor(kind),
	})
}

// VerifyOTP checks the codes submitted for the pending account
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ctx := c.Request().Context()
	sess, err := h.sessions.Load(ctx, c.Request())
	if err != nil || sess == nil || sess.Pending == nil {
		return errorResponse(c, accounts.ErrNoPendingVerification)
	}

	result, err := h.accountUC.CompleteVerification(ctx, sess.Pending,
		strings.TrimSpace(req.EmailOTP), strings.TrimSpace(req.ContactOTP))
	if err != nil {
		return errorResponse(c, err)
	}

	if !result.FullyVerified {
		return utils.FailureResponse(c, http.StatusBadRequest, failureMessage(result), VerifyResponse{VerificationResult: result})
	}

	kind := sess.Pending.Kind
	if err := h.sessions.Destroy(ctx, c.Response(), sess); err != nil {
		logger.Warn("Failed to clear pending session", logger.ErrorField(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account fully verified! You can now log in.", VerifyResponse{
		VerificationResult: result,
		Redirect:           session.LogoutRedirect(kind),
	})
}

func failureMessage(result *models.VerificationResult) string {
	var parts []string
	for _, status := range []models.ChannelStatus{result.Email, result.Contact} {
		if status.Err == nil {
			continue
		}
		label := "Email"
		if status.Channel == models.ChannelContact {
			label = "Contact"
		}
		parts = append(parts, label+": "+status.Message)
	}
	return strings.Join(parts, "; ")
}

// ResendOTP issues a fresh code on one channel of the pending account
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req models.ResendRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !req.Channel.Valid() {
		return utils.BadRequestResponse(c, "channel must be email or contact")
	}

	ctx := c.Request().Context()
	sess, err := h.sessions.Load(ctx, c.Request())
	if err != nil || sess == nil || sess.Pending == nil {
		return errorResponse(c, accounts.ErrNoPendingVerification)
	}

	identifier := sess.Pending.Email
	if req.Channel == models.ChannelContact {
		identifier = sess.Pending.Contact
	}

	result, err := h.accountUC.Resend(ctx, sess.Pending.Kind, req.Channel, identifier)
	if err != nil {
		return errorResponse(c, err)
	}

	message := "A new OTP has been sent"
	switch {
	case result.AlreadyVerified:
		message = "This channel is already verified"
	case !result.Delivered:
		message = "A new OTP was generated but could not be delivered. Please try again."
	}
	return utils.SuccessResponse(c, http.StatusOK, message, result)
}

// Logout destroys the session and reports the login page to return to
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	sess, _ := h.sessions.Load(ctx, c.Request())

	var role models.Kind
	if sess != nil {
		switch {
		case sess.Principal != nil:
			role = sess.Principal.Role
		case sess.Pending != nil:
			role = sess.Pending.Kind
		}
	}

	if err := h.sessions.Destroy(ctx, c.Response(), sess); err != nil {
		logger.Error("Failed to destroy session", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", RedirectResponse{
		Redirect: session.LogoutRedirect(role),
	})
}
