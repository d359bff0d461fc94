package users_test

import (
	"net/http"
	"testing"

	"publications-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUser(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()

	w := testutil.Do(t, r, http.MethodGet, "/me", testutil.TokenFor(t, &sd.Alice), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		PublicationCount int64 `json:"publicationCount"`
	}
	testutil.DecodeBody(t, w, &resp)

	assert.Equal(t, sd.Alice.ID, resp.User.ID)
	assert.Equal(t, sd.Alice.Email, resp.User.Email)
	// a draft and a live publication per chain type
	assert.Equal(t, int64(14), resp.PublicationCount)
}

func TestPublicProfileHidesEmailAndDrafts(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()

	w := testutil.Do(t, r, http.MethodGet, "/users/"+sd.Alice.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Orcid string `json:"orcid"`
		} `json:"user"`
		Publications []struct {
			ID string `json:"id"`
		} `json:"publications"`
	}
	testutil.DecodeBody(t, w, &resp)

	assert.Equal(t, sd.Alice.ID, resp.User.ID)
	assert.Empty(t, resp.User.Email)
	assert.NotEmpty(t, resp.User.Orcid)
	assert.Len(t, resp.Publications, 7)
}

func TestUnknownProfile(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.Router()

	w := testutil.Do(t, r, http.MethodGet, "/users/nobody", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
