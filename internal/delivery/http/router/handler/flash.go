// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"medlink/config"
	"medlink/internal/delivery/http/middleware"
	"medlink/internal/delivery/http/render"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/errors"
	"medlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// pageData assembles the template payload from what the session middleware
// attached to the request.
func pageData(c echo.Context) render.PageData {
	data := render.PageData{}
	if principal := middleware.CurrentPrincipal(c); principal != nil {
		data.Username = principal.DisplayName()
		data.UserType = principal.PrincipalType().String()
		if patient, ok := principal.(*entity.Patient); ok {
			data.CurrUser = patient
		}
	}
	data.Success, data.Error = middleware.ConsumedFlashes(c)

	return data
}

// flashText extracts a user-facing message from an error.
func flashText(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return "Something went wrong"
}

// sessionWriter bundles the session mutations handlers share: binding a
// principal to the session, queueing flash messages, and keeping the client
// cookie in sync whenever the token changes.
type sessionWriter struct {
	sessions usecase.SessionUsecase
	cfg      *config.SessionConfig
	logger   *slog.Logger
}

// establish binds the principal to the session and refreshes the cookie.
func (w *sessionWriter) establish(c echo.Context, principal entity.Principal) error {
	token, err := w.sessions.Establish(c.Request().Context(), middleware.SessionToken(c), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.SetSessionToken(c, token)
	middleware.SetSessionCookie(c, w.cfg, token)

	return nil
}

// flashAndRedirect queues a one-shot message for the target page and issues
// the redirect. A failed flash write is logged but never blocks the redirect.
func (w *sessionWriter) flashAndRedirect(c echo.Context, kind, text, target string) error {
	token, err := w.sessions.AddFlash(c.Request().Context(), middleware.SessionToken(c), entity.FlashMessage{
		Kind: kind,
		Text: text,
	})
	if err != nil {
		w.logger.Warn("failed to queue flash message",
			slog.String("target", target),
			slog.Any("error", err),
		)
	} else {
		middleware.SetSessionToken(c, token)
		middleware.SetSessionCookie(c, w.cfg, token)
	}

	return c.Redirect(http.StatusFound, target)
}
