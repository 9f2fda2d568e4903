package handler

import (
	"net/http"
	"net/url"
	"testing"

	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	mockUsecase "medlink/internal/mocks/usecase"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type patientHandlerMocks struct {
	auth     *mockUsecase.MockAuthUsecase
	records  *mockUsecase.MockRecordUsecase
	sessions *mockUsecase.MockSessionUsecase
}

func newPatientHandlerWithMocks(t *testing.T) (*PatientHandler, *patientHandlerMocks) {
	mocks := &patientHandlerMocks{
		auth:     mockUsecase.NewMockAuthUsecase(t),
		records:  mockUsecase.NewMockRecordUsecase(t),
		sessions: mockUsecase.NewMockSessionUsecase(t),
	}

	h := NewPatientHandler(mocks.auth, mocks.records, mocks.sessions, newTestConfig(), newDiscardLogger())

	return h, mocks
}

func TestPatientHandler_Login_Success(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newPatientHandlerWithMocks(t)
	patient := newTestPatient()

	mocks.auth.EXPECT().
		LoginPatient(mock.Anything, &usecase.LoginInput{Identifier: "jdoe", Password: "secret"}).
		Return(patient, nil)
	mocks.sessions.EXPECT().
		Establish(mock.Anything, "", patient).
		Return("fresh-token", nil)
	mocks.sessions.EXPECT().
		AddFlash(mock.Anything, "fresh-token", entity.FlashMessage{Kind: entity.FlashSuccess, Text: "Logged in successfully!"}).
		Return("fresh-token", nil)

	c, rec := newFormContext(e, http.MethodPost, "/userLogin", url.Values{
		"username": {"jdoe"},
		"password": {"secret"},
	})

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userHome", rec.Header().Get("Location"))
	assert.Equal(t, "fresh-token", sessionCookieValue(t, rec, "medlink_session"))
}

func TestPatientHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newPatientHandlerWithMocks(t)

	mocks.auth.EXPECT().
		LoginPatient(mock.Anything, &usecase.LoginInput{Identifier: "jdoe", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidPatientCredentials)
	mocks.sessions.EXPECT().
		AddFlash(mock.Anything, "", entity.FlashMessage{Kind: entity.FlashError, Text: "Invalid username or password"}).
		Return("anon-token", nil)

	c, rec := newFormContext(e, http.MethodPost, "/userLogin", url.Values{
		"username": {"jdoe"},
		"password": {"wrong"},
	})

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userLogin", rec.Header().Get("Location"))
}

func TestPatientHandler_Register_Success(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newPatientHandlerWithMocks(t)
	patient := newTestPatient()

	mocks.auth.EXPECT().
		RegisterPatient(mock.Anything, &usecase.RegisterPatientInput{
			PatientID:     "PT-1001",
			Username:      "jdoe",
			Name:          "Jane Doe",
			MobileNo:      "5550100",
			GuardianNo:    "5550101",
			BloodGrp:      "O+",
			HealthDetails: "no known allergies",
			Password:      "secret",
		}).
		Return(patient, nil)
	mocks.sessions.EXPECT().
		Establish(mock.Anything, "", patient).
		Return("fresh-token", nil)
	mocks.sessions.EXPECT().
		AddFlash(mock.Anything, "fresh-token", entity.FlashMessage{Kind: entity.FlashSuccess, Text: "Successfully registered!"}).
		Return("fresh-token", nil)

	c, rec := newFormContext(e, http.MethodPost, "/userRegister", url.Values{
		"userId":        {"PT-1001"},
		"username":      {"jdoe"},
		"name":          {"Jane Doe"},
		"mobileNo":      {"5550100"},
		"guardianNo":    {"5550101"},
		"bloodGrp":      {"O+"},
		"healthDetails": {"no known allergies"},
		"password":      {"secret"},
	})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userHome", rec.Header().Get("Location"))
}

func TestPatientHandler_Register_MissingField(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newPatientHandlerWithMocks(t)

	// userId omitted: validation names the missing form field.
	mocks.sessions.EXPECT().
		AddFlash(mock.Anything, "", entity.FlashMessage{Kind: entity.FlashError, Text: "userId is required"}).
		Return("anon-token", nil)

	c, rec := newFormContext(e, http.MethodPost, "/userRegister", url.Values{
		"username":      {"jdoe"},
		"mobileNo":      {"5550100"},
		"guardianNo":    {"5550101"},
		"bloodGrp":      {"O+"},
		"healthDetails": {"no known allergies"},
		"password":      {"secret"},
	})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userRegister", rec.Header().Get("Location"))
}

func TestPatientHandler_Update_Success(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newPatientHandlerWithMocks(t)
	id := uuid.New()

	mocks.records.EXPECT().
		UpdateDetails(mock.Anything, id, &usecase.UpdatePatientInput{
			Username:      "jdoe",
			MobileNo:      "5550200",
			GuardianNo:    "5550201",
			BloodGrp:      "A-",
			HealthDetails: "asthma",
		}).
		Return(nil)

	c, rec := newFormContext(e, http.MethodPut, "/userEdit/"+id.String(), url.Values{
		"username":      {"jdoe"},
		"mobileNo":      {"5550200"},
		"guardianNo":    {"5550201"},
		"bloodGrp":      {"A-"},
		"healthDetails": {"asthma"},
	})
	c.SetPath("/userEdit/:id")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userHome", rec.Header().Get("Location"))
}

func TestPatientHandler_Update_Failure(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newPatientHandlerWithMocks(t)
	id := uuid.New()

	mocks.records.EXPECT().
		UpdateDetails(mock.Anything, id, mock.AnythingOfType("*usecase.UpdatePatientInput")).
		Return(errors.Wrap(domainerrors.ErrPatientUpdateFailed, "update failed"))
	mocks.sessions.EXPECT().
		AddFlash(mock.Anything, "", entity.FlashMessage{Kind: entity.FlashError, Text: "Failed to update user details"}).
		Return("anon-token", nil)

	c, rec := newFormContext(e, http.MethodPut, "/userEdit/"+id.String(), url.Values{
		"username":      {"jdoe"},
		"mobileNo":      {"5550200"},
		"guardianNo":    {"5550201"},
		"bloodGrp":      {"A-"},
		"healthDetails": {"asthma"},
	})
	c.SetPath("/userEdit/:id")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userEdit/"+id.String(), rec.Header().Get("Location"))
}

func TestPatientHandler_EditPage_RendersRecord(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newPatientHandlerWithMocks(t)
	patient := newTestPatient()

	mocks.records.EXPECT().
		GetPatient(mock.Anything, patient.ID).
		Return(patient, nil)

	c, rec := newFormContext(e, http.MethodGet, "/userEdit/"+patient.ID.String(), nil)
	c.SetPath("/userEdit/:id")
	c.SetParamNames("id")
	c.SetParamValues(patient.ID.String())

	require.NoError(t, h.EditPage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jdoe")
	assert.Contains(t, rec.Body.String(), "no known allergies")
}

func TestPatientHandler_EditPage_BadID(t *testing.T) {
	e := newTestEcho(t)
	h, _ := newPatientHandlerWithMocks(t)

	c, _ := newFormContext(e, http.MethodGet, "/userEdit/not-a-uuid", nil)
	c.SetPath("/userEdit/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.EditPage(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
