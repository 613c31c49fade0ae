package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with the
// stack trace and answers 500 with the request id.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(echo.HeaderXRequestID)
	}

	principal := "anonymous"
	if id := c.Get("principal_id"); id != nil {
		principal = fmt.Sprintf("%v", id)
	}

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("principal", principal),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return
	}
	if err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"success":    false,
		"error":      "Internal Server Error",
		"code":       http.StatusInternalServerError,
		"request_id": requestID,
	}); err != nil {
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
