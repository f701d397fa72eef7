package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "app:\n  name: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "singsing_cart", cfg.Cart.StorageKey)
	assert.Equal(t, 1800*time.Millisecond, cfg.Cart.ToastDuration)
	assert.Equal(t, 9, cfg.Pricing.CutoffHour)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Asia/Seoul", cfg.Location().String())
}

func TestLoadReadsFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
storage:
  driver: redis
redis:
  addr: "localhost:6379"
  db: 2
cart:
  ttl: 720h
`))
	require.NoError(t, err)
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 720*time.Hour, cfg.Cart.TTL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(writeConfig(t, "app:\n  name: test\n"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Storage.Driver = "floppy"
	assert.ErrorContains(t, cfg.Validate(), "unknown storage.driver")

	cfg = base()
	cfg.Storage.Driver = DriverMySQL
	assert.ErrorContains(t, cfg.Validate(), "mysql.dsn")

	cfg = base()
	cfg.Notify.Driver = NotifyRedis
	assert.ErrorContains(t, cfg.Validate(), "redis.addr")

	cfg = base()
	cfg.Pricing.CutoffHour = 24
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Pricing.TimeZone = "Mars/Olympus"
	assert.Error(t, cfg.Validate())
}
