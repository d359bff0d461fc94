package auth_test

import (
	"net/http"
	"testing"

	"publications-app/database"
	"publications-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.Router()

	w := testutil.Do(t, r, http.MethodPost, "/register", "", map[string]string{
		"firstName": "Dana",
		"lastName":  "Researcher",
		"email":     "dana@example.com",
		"password":  "Research123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/login", "", map[string]string{
		"email":    "dana@example.com",
		"password": "Research123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	testutil.DecodeBody(t, w, &resp)
	require.NotEmpty(t, resp["token"])

	// the token works against an authenticated route
	w = testutil.Do(t, r, http.MethodGet, "/me", resp["token"], nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.Router()

	// weak password
	w := testutil.Do(t, r, http.MethodPost, "/register", "", map[string]string{
		"firstName": "Dana", "lastName": "R", "email": "dana@example.com", "password": "short1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// digits only
	w = testutil.Do(t, r, http.MethodPost, "/register", "", map[string]string{
		"firstName": "Dana", "lastName": "R", "email": "dana@example.com", "password": "123456789",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate email
	seeded := "alice@example.com"
	w = testutil.Do(t, r, http.MethodPost, "/register", "", map[string]string{
		"firstName": "Alice", "lastName": "Again", "email": seeded, "password": "Research123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()

	w := testutil.Do(t, r, http.MethodPost, "/login", "", map[string]string{
		"email":    sd.Alice.Email,
		"password": "WrongPass123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/login", "", map[string]string{
		"email":    sd.Alice.Email,
		"password": database.SeedPassword,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.Router()

	w := testutil.Do(t, r, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/me", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
