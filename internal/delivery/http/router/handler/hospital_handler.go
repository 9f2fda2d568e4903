package handler

import (
	"log/slog"
	"net/http"

	"medlink/config"
	"medlink/internal/delivery/http/middleware"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/errors"
	"medlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HospitalHandler serves the hospital-facing pages: login, registration,
// the dashboard, and patient search.
type HospitalHandler struct {
	sessionWriter
	auth    usecase.AuthUsecase
	records usecase.RecordUsecase
}

// NewHospitalHandler is the constructor for HospitalHandler, injected by Fx.
func NewHospitalHandler(
	auth usecase.AuthUsecase,
	records usecase.RecordUsecase,
	sessions usecase.SessionUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) *HospitalHandler {
	return &HospitalHandler{
		sessionWriter: sessionWriter{sessions: sessions, cfg: cfg.Session, logger: logger},
		auth:          auth,
		records:       records,
	}
}

// Home renders the hospital dashboard with the patient search form.
func (h *HospitalHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "hospitalHome.html", pageData(c))
}

// LoginPage renders the hospital login form.
func (h *HospitalHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "hospitalLogin.html", pageData(c))
}

// Login verifies hospital credentials and binds the principal to the
// session. A failed attempt leaves any existing session untouched.
func (h *HospitalHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, "Invalid email or password", "/hospitalLogin")
	}
	if err := c.Validate(input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, "Invalid email or password", "/hospitalLogin")
	}

	principal, err := h.auth.LoginHospital(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidHospitalCredentials) {
			return h.flashAndRedirect(c, entity.FlashError, "Invalid email or password", "/hospitalLogin")
		}

		return errors.WithStack(err)
	}

	if err := h.establish(c, principal); err != nil {
		return err
	}

	return h.flashAndRedirect(c, entity.FlashSuccess, "Logged in successfully!", "/hospitalHome")
}

// RegisterPage renders the hospital registration form.
func (h *HospitalHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "hospitalRegister.html", pageData(c))
}

// Register creates a hospital account and logs it in right away.
func (h *HospitalHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterHospitalInput)
	if err := c.Bind(input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, "Invalid registration input", "/hospitalRegister")
	}
	if err := c.Validate(input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, flashText(err), "/hospitalRegister")
	}

	hospital, err := h.auth.RegisterHospital(c.Request().Context(), input)
	if err != nil {
		return h.flashAndRedirect(c, entity.FlashError, flashText(err), "/hospitalRegister")
	}

	if err := h.establish(c, hospital); err != nil {
		return err
	}

	return h.flashAndRedirect(c, entity.FlashSuccess, "Successfully registered and logged in!", "/hospitalHome")
}

// Logout drops the principal from the session and sends the visitor home.
// The session row stays so the goodbye flash survives the redirect.
func (h *HospitalHandler) Logout(c echo.Context) error {
	token := middleware.SessionToken(c)
	if err := h.sessions.Clear(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return h.flashAndRedirect(c, entity.FlashSuccess, "Logged out successfully!", "/home")
}

// Search looks up a patient by external patient ID and renders the record.
func (h *HospitalHandler) Search(c echo.Context) error {
	patientID := c.FormValue("userId")

	patient, err := h.records.SearchByPatientID(c.Request().Context(), patientID)
	switch {
	case err == nil:
		data := pageData(c)
		data.CurrUser = patient

		return c.Render(http.StatusOK, "userDetails.html", data)
	case errors.Is(err, domainerrors.ErrPatientNotFound):
		return h.flashAndRedirect(c, entity.FlashError, "User not found", "/hospitalHome")
	default:
		return h.flashAndRedirect(c, entity.FlashError, "An error occurred while searching for the user", "/hospitalHome")
	}
}
