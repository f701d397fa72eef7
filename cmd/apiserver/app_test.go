package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"singsing/storefront/internal/app/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  env: test\n  log_level: error\n"), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	cfg.Pricing.PriceFile = filepath.Join(t.TempDir(), "missing.json")
	return cfg
}

func addItem(t *testing.T, app *App, cartID string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/"+cartID+"/items",
		strings.NewReader(`{"product_id":"onion_mid","pack":"5kg","qty":2}`))
	req.Header.Set("Content-Type", "application/json")
	app.Engine.ServeHTTP(w, req)
	return w
}

func TestInitializeAppMemory(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, cfg.Validate())

	app, cleanup, err := InitializeApp(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Nil(t, app.Prices.Table())
	w := addItem(t, app, "c1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestInitializeAppFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Driver = config.DriverFile
	cfg.Storage.FileDir = filepath.Join(t.TempDir(), "carts")

	app, cleanup, err := InitializeApp(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	require.Equal(t, http.StatusOK, addItem(t, app, "c1").Code)
	entries, err := os.ReadDir(cfg.Storage.FileDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInitializeAppRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Storage.Driver = config.DriverRedis
	cfg.Notify.Driver = config.NotifyRedis
	cfg.Redis.Addr = mr.Addr()
	require.NoError(t, cfg.Validate())

	app, cleanup, err := InitializeApp(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	require.Equal(t, http.StatusOK, addItem(t, app, "c1").Code)
	stored, err := mr.Get("singsing_cart:c1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":"onion_mid","name":"","pack":5,"qty":2}]`, stored)
}

func TestInitializeAppRedisUnavailable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Driver = config.DriverRedis
	cfg.Redis.Addr = "127.0.0.1:1"

	_, _, err := InitializeApp(context.Background(), cfg)
	assert.Error(t, err)
}
