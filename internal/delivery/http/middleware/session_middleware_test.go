package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medlink/config"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	mockUsecase "medlink/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		CookieName: "medlink_session",
		TTL:        time.Hour,
	}

	return cfg
}

func newSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockUsecase.MockSessionUsecase) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewSessionMiddleware(sessions, newTestSessionConfig(), logger)

	return m, sessions
}

func runMiddleware(t *testing.T, m *SessionMiddleware, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.LoadSession(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return c, rec
}

func TestSessionMiddleware_NoCookie(t *testing.T) {
	m, _ := newSessionMiddleware(t)

	c, rec := runMiddleware(t, m, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, CurrentPrincipal(c))
	assert.Empty(t, SessionToken(c))
}

func TestSessionMiddleware_ResolvesPrincipalAndFlash(t *testing.T) {
	m, sessions := newSessionMiddleware(t)
	hospital := &entity.Hospital{ID: uuid.New(), Username: "mercy-general"}

	sessions.EXPECT().Resolve(mock.Anything, "tok").Return(hospital, nil)
	sessions.EXPECT().ConsumeFlash(mock.Anything, "tok").Return([]entity.FlashMessage{
		{Kind: entity.FlashSuccess, Text: "Logged in successfully!"},
		{Kind: entity.FlashError, Text: "User not found"},
	}, nil)

	c, _ := runMiddleware(t, m, &http.Cookie{Name: "medlink_session", Value: "tok"})

	principal := CurrentPrincipal(c)
	require.NotNil(t, principal)
	assert.Equal(t, hospital.ID, principal.PrincipalID())
	assert.Equal(t, "tok", SessionToken(c))

	success, failure := ConsumedFlashes(c)
	assert.Equal(t, []string{"Logged in successfully!"}, success)
	assert.Equal(t, []string{"User not found"}, failure)
}

func TestSessionMiddleware_AnonymousSession(t *testing.T) {
	m, sessions := newSessionMiddleware(t)

	sessions.EXPECT().Resolve(mock.Anything, "tok").Return(nil, nil)
	sessions.EXPECT().ConsumeFlash(mock.Anything, "tok").Return(nil, nil)

	c, rec := runMiddleware(t, m, &http.Cookie{Name: "medlink_session", Value: "tok"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, CurrentPrincipal(c))
	assert.Equal(t, "tok", SessionToken(c))
}

// A store outage while resolving must bubble to the global error handler
// without touching the client cookie: the server-side row is intact, so the
// visitor stays logged in once the store recovers.
func TestSessionMiddleware_StoreFailureKeepsCookie(t *testing.T) {
	m, sessions := newSessionMiddleware(t)

	sessions.EXPECT().
		Resolve(mock.Anything, "tok").
		Return(nil, errors.New("failed to load session: connection refused"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "medlink_session", Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.LoadSession(func(echo.Context) error {
		t.Fatal("next handler must not run when the session store is down")

		return nil
	})
	require.Error(t, handler(c))

	assert.Empty(t, rec.Header().Values("Set-Cookie"))
}

func TestSessionMiddleware_InvalidSessionProceedsAnonymous(t *testing.T) {
	m, sessions := newSessionMiddleware(t)

	sessions.EXPECT().
		Resolve(mock.Anything, "tok").
		Return(nil, domainerrors.ErrSessionInvalid)

	c, rec := runMiddleware(t, m, &http.Cookie{Name: "medlink_session", Value: "tok"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, CurrentPrincipal(c))
	assert.Empty(t, SessionToken(c))

	// The stale cookie is expired on the client.
	res := &http.Response{Header: rec.Header()}
	var cleared bool
	for _, cookie := range res.Cookies() {
		if cookie.Name == "medlink_session" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
