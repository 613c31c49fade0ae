package middleware

import (
	"errors"
	"net/http"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/labstack/echo/v4"
)

// PrincipalHandlerFunc is a handler that receives the authenticated principal
type PrincipalHandlerFunc func(c echo.Context, p *models.Principal) error

// RequireLogin authenticates the request and attaches the principal to its context
func RequireLogin(gate *session.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := gate.Authenticate(c.Request().Context(), c.Request())
			if err != nil {
				return GateErrorResponse(c, err)
			}

			c.SetRequest(c.Request().WithContext(session.WithPrincipal(c.Request().Context(), p)))
			c.Set("principal_id", p.ID)

			return next(c)
		}
	}
}

// RequireRole authorizes the principal placed by RequireLogin. Without a
// principal the request is treated as unauthenticated.
func RequireRole(gate *session.Gate, role models.Kind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, _ := session.PrincipalFromContext(c.Request().Context())
			if err := gate.Authorize(p, role); err != nil {
				return GateErrorResponse(c, err)
			}
			return next(c)
		}
	}
}

// WithPrincipal adapts a PrincipalHandlerFunc to an echo handler
func WithPrincipal(h PrincipalHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := session.PrincipalFromContext(c.Request().Context())
		if !ok {
			return GateErrorResponse(c, &session.GateError{Err: session.ErrUnauthenticated, Redirect: session.HomeFor("")})
		}
		return h(c, p)
	}
}

// GateErrorResponse writes the response for a gate failure
func GateErrorResponse(c echo.Context, err error) error {
	var gateErr *session.GateError
	if !errors.As(err, &gateErr) {
		return utils.InternalServerErrorResponse(c, "")
	}

	if errors.Is(gateErr, session.ErrForbidden) {
		return utils.RedirectErrorResponse(c, http.StatusForbidden, "Access denied", gateErr.Redirect)
	}
	return utils.RedirectErrorResponse(c, http.StatusUnauthorized, "Please log in to continue", gateErr.Redirect)
}
