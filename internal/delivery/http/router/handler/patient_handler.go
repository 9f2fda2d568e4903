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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PatientHandler serves the patient-facing pages, kept under the historical
// /user* routes: login, registration, the record view, and record editing.
type PatientHandler struct {
	sessionWriter
	auth    usecase.AuthUsecase
	records usecase.RecordUsecase
}

// NewPatientHandler is the constructor for PatientHandler, injected by Fx.
func NewPatientHandler(
	auth usecase.AuthUsecase,
	records usecase.RecordUsecase,
	sessions usecase.SessionUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) *PatientHandler {
	return &PatientHandler{
		sessionWriter: sessionWriter{sessions: sessions, cfg: cfg.Session, logger: logger},
		auth:          auth,
		records:       records,
	}
}

// Home renders the patient's own health record.
func (h *PatientHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "userHome.html", pageData(c))
}

// LoginPage renders the patient login form.
func (h *PatientHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "userLogin.html", pageData(c))
}

// Login verifies patient credentials and binds the principal to the session.
func (h *PatientHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, "Invalid username or password", "/userLogin")
	}
	if err := c.Validate(input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, "Invalid username or password", "/userLogin")
	}

	principal, err := h.auth.LoginPatient(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidPatientCredentials) {
			return h.flashAndRedirect(c, entity.FlashError, "Invalid username or password", "/userLogin")
		}

		return errors.WithStack(err)
	}

	if err := h.establish(c, principal); err != nil {
		return err
	}

	return h.flashAndRedirect(c, entity.FlashSuccess, "Logged in successfully!", "/userHome")
}

// RegisterPage renders the patient registration form.
func (h *PatientHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "userRegister.html", pageData(c))
}

// Register creates a patient account and logs it in right away.
func (h *PatientHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterPatientInput)
	if err := c.Bind(input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, "Invalid registration input", "/userRegister")
	}
	if err := c.Validate(input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, flashText(err), "/userRegister")
	}

	patient, err := h.auth.RegisterPatient(c.Request().Context(), input)
	if err != nil {
		return h.flashAndRedirect(c, entity.FlashError, flashText(err), "/userRegister")
	}

	if err := h.establish(c, patient); err != nil {
		return err
	}

	return h.flashAndRedirect(c, entity.FlashSuccess, "Successfully registered!", "/userHome")
}

// Logout drops the principal from the session and sends the visitor home.
func (h *PatientHandler) Logout(c echo.Context) error {
	token := middleware.SessionToken(c)
	if err := h.sessions.Clear(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return h.flashAndRedirect(c, entity.FlashSuccess, "Logged out successfully!", "/home")
}

// EditPage renders the edit form for the record named in the URL.
func (h *PatientHandler) EditPage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Page not found")
	}

	patient, err := h.records.GetPatient(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPatientNotFound) {
			return h.flashAndRedirect(c, entity.FlashError, "User not found", "/userHome")
		}

		return errors.WithStack(err)
	}

	data := pageData(c)
	data.CurrUser = patient

	return c.Render(http.StatusOK, "editUser.html", data)
}

// Update persists the editable record fields. The external patient ID and the
// stored credential are never touched by this path.
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Page not found")
	}
	editPath := "/userEdit/" + id.String()

	input := new(usecase.UpdatePatientInput)
	if err := c.Bind(input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, "Failed to update user details", editPath)
	}
	if err := c.Validate(input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, "Failed to update user details", editPath)
	}

	if err := h.records.UpdateDetails(c.Request().Context(), id, input); err != nil {
		return h.flashAndRedirect(c, entity.FlashError, flashText(err), editPath)
	}

	return c.Redirect(http.StatusFound, "/userHome")
}
