package admin_test

import (
	"net/http"
	"testing"

	"publications-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDashboardStats(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()

	w := testutil.Do(t, r, http.MethodGet, "/admin/dashboard", testutil.TokenFor(t, &sd.Admin), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalUsers        int64 `json:"totalUsers"`
		TotalPublications int64 `json:"totalPublications"`
		LivePublications  int64 `json:"livePublications"`
		DraftPublications int64 `json:"draftPublications"`
	}
	testutil.DecodeBody(t, w, &stats)

	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, int64(14), stats.TotalPublications)
	assert.Equal(t, int64(7), stats.LivePublications)
	assert.Equal(t, int64(7), stats.DraftPublications)
}

func TestAdminRoutesNeedAdminRole(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()

	w := testutil.Do(t, r, http.MethodGet, "/admin/users", testutil.TokenFor(t, &sd.Carol), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/admin/users", testutil.TokenFor(t, &sd.Admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
