package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newValidatedContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterRequiresAllFields(t *testing.T) {
	uc := &UserController{}

	c, rec := newValidatedContext(t, `{"email":"tenant@example.com"}`)

	require.NoError(t, uc.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields are required")
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	uc := &UserController{}

	body := `{"email":"not-an-email","password":"Passw0rd!","firstName":"A","surname":"B"}`
	c, rec := newValidatedContext(t, body)

	require.NoError(t, uc.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email format")
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	uc := &UserController{}

	body := `{"email":"tenant@example.com","password":"weak","firstName":"A","surname":"B"}`
	c, rec := newValidatedContext(t, body)

	require.NoError(t, uc.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password must be at least 8 characters")
}

func TestLoginRequiresCredentials(t *testing.T) {
	uc := &UserController{}

	c, rec := newValidatedContext(t, `{"email":"tenant@example.com"}`)

	require.NoError(t, uc.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email and password are required")
}

func TestGetProfileRejectsBadID(t *testing.T) {
	uc := &UserController{}

	c, rec := newJSONContext(t, http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues("not-an-objectid")

	require.NoError(t, uc.GetProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid id format")
}
