package middleware

import (
	"log/slog"
	"net/http"

	"medlink/internal/delivery/http/render"
	domainerrors "medlink/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders errors that escape the handlers as the error page.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Something went wrong"

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.HTTPCode()
		message = appErr.Message()
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if status == http.StatusNotFound {
			message = "Page not found"
		}
	default:
		m.logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	principal := CurrentPrincipal(c)
	data := render.PageData{Status: status, Message: message}
	if principal != nil {
		data.Username = principal.DisplayName()
		data.UserType = principal.PrincipalType().String()
	}

	if renderErr := c.Render(status, "error.html", data); renderErr != nil {
		m.logger.Error("failed to render error page", slog.Any("error", renderErr))
		_ = c.String(status, message)
	}
}
