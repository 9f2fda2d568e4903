package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"medlink/config"
	"medlink/internal/delivery/http/render"
	"medlink/internal/delivery/http/validator"
	"medlink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	renderer, err := render.New()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()

	return e
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		CookieName: "medlink_session",
		TTL:        time.Hour,
	}

	return cfg
}

func newFormContext(e *echo.Echo, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestHospital() *entity.Hospital {
	return &entity.Hospital{
		ID:       uuid.New(),
		Email:    "mercy@example.com",
		Username: "mercy-general",
	}
}

func newTestPatient() *entity.Patient {
	return &entity.Patient{
		ID:            uuid.New(),
		PatientID:     "PT-1001",
		Username:      "jdoe",
		Name:          "Jane Doe",
		MobileNo:      "5550100",
		GuardianNo:    "5550101",
		BloodGrp:      "O+",
		HealthDetails: "no known allergies",
	}
}

func sessionCookieValue(t *testing.T, rec *httptest.ResponseRecorder, name string) string {
	t.Helper()

	res := &http.Response{Header: rec.Header()}
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}

	return ""
}
