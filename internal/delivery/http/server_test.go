package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"medlink/config"
	custommiddleware "medlink/internal/delivery/http/middleware"
	"medlink/internal/delivery/http/router"
	"medlink/internal/delivery/http/router/handler"
	mockUsecase "medlink/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type stubLifecycle struct{}

func (stubLifecycle) Append(fx.Hook) {}

func TestNewServer_AppliesConfiguredTimeouts(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.Port = 3000
	cfg.HTTP.Timeouts.ReadTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 15 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = time.Minute
	cfg.Session = &config.SessionConfig{
		CookieName: "medlink_session",
		TTL:        time.Hour,
	}

	auth := mockUsecase.NewMockAuthUsecase(t)
	records := mockUsecase.NewMockRecordUsecase(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)

	d, err := NewServer(HTTPParams{
		Lifecycle: stubLifecycle{},
		Config:    cfg,
		Logger:    logger,
		RouterParams: router.RouterParams{
			HospitalHandler: handler.NewHospitalHandler(auth, records, sessions, cfg, logger),
			PatientHandler:  handler.NewPatientHandler(auth, records, sessions, cfg, logger),
		},
		RequestIDMiddleware: custommiddleware.NewRequestIDMiddleware(logger),
		SessionMiddleware:   custommiddleware.NewSessionMiddleware(sessions, cfg, logger),
		ErrorMiddleware:     custommiddleware.NewErrorMiddleware(logger),
	})
	require.NoError(t, err)

	srv, ok := d.(*httpServer)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, srv.server.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 15*time.Second, srv.server.Server.WriteTimeout)
	assert.Equal(t, time.Minute, srv.server.Server.IdleTimeout)
}
