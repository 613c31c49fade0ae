package http

import (
	"errors"
	"net/http"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
	"github.com/labstack/echo/v4"
)

// errorResponse maps account errors onto HTTP statuses
func errorResponse(c echo.Context, err error) error {
	var dup *accounts.DuplicateIdentifierError
	switch {
	case errors.As(err, &dup):
		return utils.ConflictResponse(c, dup.Error())
	case errors.Is(err, accounts.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, accounts.ErrNotFound):
		return utils.NotFoundResponse(c, "Account not found")
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	case errors.Is(err, accounts.ErrInvalidCode):
		return utils.BadRequestResponse(c, "Invalid OTP")
	case errors.Is(err, accounts.ErrExpired):
		return utils.ErrorResponseHandler(c, http.StatusGone, "OTP has expired")
	case errors.Is(err, accounts.ErrNoPendingVerification):
		return utils.BadRequestResponse(c, "No verification in progress")
	}

	logger.Error("Request failed",
		logger.String("path", c.Path()),
		logger.ErrorField(err),
	)
	return utils.InternalServerErrorResponse(c, "")
}
