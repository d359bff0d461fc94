package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"publications-app/config"
	"publications-app/database"
	authapi "publications-app/internal/api/auth"
	routes "publications-app/internal/app/http"
	"publications-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB points the global database handle at a fresh in-memory sqlite
// instance, migrates the schema and loads the fixture set. Each test gets
// its own named shared-cache database so connections from the pool see the
// same tables.
func SetupDB(t *testing.T) *database.SeedData {
	t.Helper()

	config.C = &config.Config{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))
	database.DB = db

	sd, err := database.Seed(db)
	require.NoError(t, err)
	return sd
}

func Router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func TokenFor(t *testing.T, u *users.User) string {
	t.Helper()
	token, err := authapi.IssueToken(u)
	require.NoError(t, err)
	return token
}

// Do runs one JSON request against the router. A nil body sends no payload
// and an empty token leaves the request anonymous.
func Do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DecodeBody unmarshals a recorded JSON response into out.
func DecodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
