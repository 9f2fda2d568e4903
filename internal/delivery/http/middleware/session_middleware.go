// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"medlink/config"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/errors"
	"medlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Echo context keys populated by SessionMiddleware.
const (
	keyPrincipal    = "session.principal"
	keySessionToken = "session.token"
	keyFlashSuccess = "session.flashSuccess"
	keyFlashError   = "session.flashError"
)

// SessionMiddleware resolves the session cookie into a principal before every
// request and consumes any pending flash messages, mirroring what a session
// deserializer does on each hit.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	cfg      *config.SessionConfig
	logger   *slog.Logger
}

// NewSessionMiddleware creates the session resolution middleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		cfg:      cfg.Session,
		logger:   logger,
	}
}

// LoadSession attaches the current principal, session token, and consumed
// flash messages to the Echo context. A session whose principal vanished is
// cleared and the request proceeds as anonymous; store failures propagate to
// the global error handler so a transient outage never expires live cookies.
func (m *SessionMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.readToken(c)
		if token == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		c.Set(keySessionToken, token)

		principal, err := m.sessions.Resolve(ctx, token)
		if err != nil {
			if !errors.Is(err, domainerrors.ErrSessionInvalid) {
				return errors.Wrap(err, "failed to resolve session")
			}

			m.logger.Warn("session no longer valid, proceeding as anonymous",
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
			ClearSessionCookie(c, m.cfg)
			c.Set(keySessionToken, "")

			return next(c)
		}
		if principal != nil {
			c.Set(keyPrincipal, principal)
		}

		flashes, err := m.sessions.ConsumeFlash(ctx, token)
		if err != nil {
			m.logger.Warn("failed to consume flash messages", slog.Any("error", err))
		}

		var success, failure []string
		for _, flash := range flashes {
			switch flash.Kind {
			case entity.FlashError:
				failure = append(failure, flash.Text)
			default:
				success = append(success, flash.Text)
			}
		}
		c.Set(keyFlashSuccess, success)
		c.Set(keyFlashError, failure)

		return next(c)
	}
}

func (m *SessionMiddleware) readToken(c echo.Context) string {
	cookie, err := c.Cookie(m.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	return cookie.Value
}

// CurrentPrincipal returns the logged-in principal, or nil for anonymous
// requests.
func CurrentPrincipal(c echo.Context) entity.Principal {
	principal, _ := c.Get(keyPrincipal).(entity.Principal)

	return principal
}

// SessionToken returns the raw session token carried by the request cookie,
// or "" when there is none.
func SessionToken(c echo.Context) string {
	token, _ := c.Get(keySessionToken).(string)

	return token
}

// SetSessionToken records a newly minted token so later steps in the same
// request observe it.
func SetSessionToken(c echo.Context, token string) {
	c.Set(keySessionToken, token)
}

// ConsumedFlashes returns the flash messages popped for this request.
func ConsumedFlashes(c echo.Context) (success, failure []string) {
	success, _ = c.Get(keyFlashSuccess).([]string)
	failure, _ = c.Get(keyFlashError).([]string)

	return success, failure
}

// SetSessionCookie writes the session token cookie with the configured
// lifetime. Handlers call this whenever the token changes.
func SetSessionCookie(c echo.Context, cfg *config.SessionConfig, token string) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(cfg.TTL),
		MaxAge:   int(cfg.TTL / time.Second),
		HttpOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c echo.Context, cfg *config.SessionConfig) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
