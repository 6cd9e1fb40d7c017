package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit-api/internal/shared/config"
	"recruit-api/internal/shared/storage/docstore"
)

type schemaFailDB struct {
	*docstore.Memory
	closed bool
}

func (s *schemaFailDB) EnsureSchema(ctx context.Context) error { return errors.New("boom") }

func (s *schemaFailDB) Close(ctx context.Context) error {
	s.closed = true
	return nil
}

func stubOpenStore(t *testing.T, fn func(ctx context.Context, rawURL, dbName string) (docstore.Database, error)) {
	t.Helper()
	prev := openStore
	openStore = fn
	t.Cleanup(func() { openStore = prev })
}

func TestBuildDevWithoutURLUsesMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(config.Config{Env: "dev"})
	require.NoError(t, err)
	require.NotNil(t, app.DB)
	assert.Equal(t, docstore.KindMemory, app.DB.Kind())
	assert.Equal(t, "DATABASE_URL not set", app.StoreFallback)
	assert.NotNil(t, app.Router)
}

func TestBuildProductionWithoutURLHasNoStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(config.Config{Env: "production"})
	require.NoError(t, err)
	assert.Nil(t, app.DB)
	assert.NoError(t, app.Close(context.Background()))
}

func TestBuildOpensConfiguredStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var gotURL, gotName string
	stubOpenStore(t, func(ctx context.Context, rawURL, dbName string) (docstore.Database, error) {
		gotURL, gotName = rawURL, dbName
		return docstore.NewMemory(), nil
	})

	app, err := Build(config.Config{Env: "production", DatabaseURL: "mongodb://db:27017", DatabaseName: "recruit"})
	require.NoError(t, err)
	assert.Empty(t, app.StoreFallback)
	assert.Equal(t, "mongodb://db:27017", gotURL)
	assert.Equal(t, "recruit", gotName)
	require.NotNil(t, app.DB)
}

func TestBuildOpenFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stubOpenStore(t, func(ctx context.Context, rawURL, dbName string) (docstore.Database, error) {
		return nil, errors.New("dial failed")
	})

	_, err := Build(config.Config{Env: "production", DatabaseURL: "postgres://db"})
	require.Error(t, err)

	app, err := Build(config.Config{Env: "local", DatabaseURL: "postgres://db"})
	require.NoError(t, err)
	assert.Equal(t, docstore.KindMemory, app.DB.Kind())
	assert.Equal(t, "dial failed", app.StoreFallback)
}

func TestDevFallbackDegradesDiagnostics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stubOpenStore(t, func(ctx context.Context, rawURL, dbName string) (docstore.Database, error) {
		return nil, errors.New("ping database: connection refused")
	})

	app, err := Build(config.Config{Env: "dev", DatabaseURL: "postgres://u:p@127.0.0.1:1/db"})
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var report map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &report))
	assert.Equal(t, "⚠️  In-memory fallback: ping database: connection refused", report["database"])
	assert.Equal(t, "Not Connected", report["connection_status"])
	assert.Equal(t, "✅ Set", report["database_url"])
}

func TestDevSchemaFailureFallsBackWithReason(t *testing.T) {
	gin.SetMode(gin.TestMode)
	failing := &schemaFailDB{Memory: docstore.NewMemory()}
	stubOpenStore(t, func(ctx context.Context, rawURL, dbName string) (docstore.Database, error) {
		return failing, nil
	})

	app, err := Build(config.Config{Env: "dev", DatabaseURL: "postgres://db"})
	require.NoError(t, err)
	assert.True(t, failing.closed)
	assert.Equal(t, "boom", app.StoreFallback)
	assert.Contains(t, app.DiagnosticsService.Report(context.Background()).Database, "In-memory fallback: boom")
}

func TestBuildSchemaFailureClosesStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	failing := &schemaFailDB{Memory: docstore.NewMemory()}
	stubOpenStore(t, func(ctx context.Context, rawURL, dbName string) (docstore.Database, error) {
		return failing, nil
	})

	_, err := Build(config.Config{Env: "staging", DatabaseURL: "postgres://db"})
	require.Error(t, err)
	assert.True(t, failing.closed)
}
