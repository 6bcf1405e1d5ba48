package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"MediSure/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FullCoverage(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("SESSION_BACKEND", "memory")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000")

	var capturedOpts server.Options

	// intercept options
	original := startServer
	startServer = func(opts server.Options) error {
		capturedOpts = opts
		return nil
	}
	defer func() { startServer = original }()

	require.NoError(t, run())
	assert.False(t, capturedOpts.JobsEnabled)
	assert.False(t, capturedOpts.MigrationEnabled)

	app, cleanup, err := server.Bootstrap(context.Background(), capturedOpts.Config, false)
	require.NoError(t, err)
	defer cleanup()

	scheduler, err := capturedOpts.JobsHandler(app)
	require.NoError(t, err)
	assert.Nil(t, scheduler)
	require.NoError(t, capturedOpts.MigrationHandler(context.Background()))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	capturedOpts.WebServerPreHandler(r, app)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/checkAuth", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := newRootCmd()
	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "jobs"}, names)

	jobsCmd, _, err := root.Find([]string{"jobs", "sweep-missed"})
	require.NoError(t, err)
	assert.Equal(t, "sweep-missed", jobsCmd.Name())
}
