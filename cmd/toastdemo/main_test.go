package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/internal/gallery"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/toastmetrics"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestExamplesCmd(t *testing.T) {
	out, err := execute(t, "examples")
	require.NoError(t, err)
	assert.Contains(t, out, "Basic (basic)")
	assert.Contains(t, out, `    toast.Info(ctx, "Your changes were saved.")`)

	out, err = execute(t, "examples", "persistent")
	require.NoError(t, err)
	assert.Contains(t, out, "Persistent (persistent)")
	assert.NotContains(t, out, "(basic)")

	_, err = execute(t, "examples", "nope")
	assert.ErrorIs(t, err, gallery.ErrExampleNotFound)
}

func TestExamplesCmd_Simulate(t *testing.T) {
	out, err := execute(t, "examples", "--simulate", "--steps", "10", "basic", "persistent", "warning-long")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "t=0s     visible=3", lines[0])
	assert.Contains(t, out, "t=5s     visible=2")
	assert.Contains(t, out, "t=8s     visible=1")
	assert.Contains(t, out, "t=10s    visible=1")
}

func TestRouter(t *testing.T) {
	catalog, err := gallery.Load()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	p := toast.NewProvider(toast.DefaultConfig(),
		toast.WithScheduler(toast.NewManualScheduler()),
		toast.WithObserver(toastmetrics.New(toastmetrics.WithRegistry(reg))),
	)
	t.Cleanup(func() { _ = p.Close() })

	cfg := appConfig{MetricsPath: "/metrics"}
	h := newRouter(cfg, logger.Discard(), p, catalog, reg)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	health := get("/healthz")
	assert.Equal(t, "ALIVE", health.Body.String())
	assert.NotEmpty(t, health.Header().Get("X-Request-ID"))
	assert.Equal(t, "READY", get("/readyz").Body.String())
	assert.Contains(t, get("/").Body.String(), "Toast gallery")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/examples/error", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, p.Snapshot().Len())

	metrics := get("/metrics").Body.String()
	assert.Contains(t, metrics, `toastkit_toasts_shown_total{position="top-right",type="error"} 1`)
	assert.Contains(t, metrics, `toastkit_toasts_visible{position="top-right"} 1`)

	require.NoError(t, p.Close())
	assert.Equal(t, http.StatusServiceUnavailable, get("/readyz").Code)
}
