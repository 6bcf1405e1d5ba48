package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MediSure/config"
	"MediSure/repository"
	"MediSure/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		Environment:    "test",
		StoreBackend:   config.StoreMemory,
		SessionBackend: config.StoreMemory,
		JWTSecret:      "test-secret",
		SessionTTL:     time.Hour,
		CacheTTL:       time.Minute,
		ImageBaseURL:   "http://images.test",
	}
}

func TestBootstrap_Memory(t *testing.T) {
	app, cleanup, err := Bootstrap(context.Background(), memoryConfig(), false)
	require.NoError(t, err)
	defer cleanup()

	assert.IsType(t, &repository.MemoryUserRepository{}, app.Repos.Users)
	assert.IsType(t, &session.MemoryStore{}, app.Sessions)
	require.NotNil(t, app.Services)
	assert.NotNil(t, app.Services.Schedule)
}

func TestBootstrap_UnknownBackends(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreBackend = "postgres"
	_, _, err := Bootstrap(context.Background(), cfg, false)
	assert.ErrorContains(t, err, "store backend")

	cfg = memoryConfig()
	cfg.SessionBackend = "memcached"
	_, _, err = Bootstrap(context.Background(), cfg, false)
	assert.ErrorContains(t, err, "session backend")
}

func TestGetDefaultOptions(t *testing.T) {
	cfg := memoryConfig()
	opts := GetDefaultOptions(cfg)
	assert.True(t, opts.WebServerEnabled)
	assert.False(t, opts.MigrationEnabled)
	assert.False(t, opts.CacheEnabled)
	assert.Equal(t, "0", opts.WebServerPort)

	cfg.StoreBackend = config.StoreMongo
	opts = GetDefaultOptions(cfg)
	assert.True(t, opts.MigrationEnabled)
	assert.True(t, opts.CacheEnabled)
}

func TestNewEngine_RecoversFromPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewEngine(memoryConfig())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
