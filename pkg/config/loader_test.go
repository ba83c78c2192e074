package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/config"
)

type successConfig struct {
	Name    string        `env:"CFG_TEST_NAME" envDefault:"default"`
	Count   int           `env:"CFG_TEST_COUNT" envDefault:"42"`
	Enabled bool          `env:"CFG_TEST_ENABLED" envDefault:"true"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Required string `env:"CFG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	FromFile string `env:"CFG_TEST_FROM_FILE"`
}

func TestLoad(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFG_TEST_NAME", "toast")
		t.Setenv("CFG_TEST_COUNT", "7")
		t.Setenv("CFG_TEST_TIMEOUT", "250ms")

		var cfg successConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "toast", cfg.Name)
		assert.Equal(t, 7, cfg.Count)
		assert.True(t, cfg.Enabled)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("uses defaults", func(t *testing.T) {
		config.Reset()
		var cfg successConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "default", cfg.Name)
		assert.Equal(t, 42, cfg.Count)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFG_TEST_NAME", "first")
		var first successConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CFG_TEST_NAME", "second")
		var second successConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Name)

		config.Reset()
		var third successConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Name)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("CFG_TEST_REQUIRED")
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *successConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	os.Unsetenv("CFG_TEST_REQUIRED")
	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		config.Reset()
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FROM_FILE=from-file\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("CFG_TEST_FROM_FILE") })

		require.NoError(t, config.LoadEnv(path))
		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-file", cfg.FromFile)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no paths", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
