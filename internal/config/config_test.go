package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/denismitr/intset/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		cfg, err := config.Load(config.New(), "")
		require.NoError(t, err)

		assert.False(t, cfg.Debug)
		assert.Equal(t, 500, cfg.Laws.Trials)
		assert.Equal(t, 4, cfg.Laws.Concurrency)
		assert.True(t, cfg.Output.Color)
		assert.Empty(t, cfg.Laws.Only)
	})

	t.Run("values from a yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "intset.yaml")
		body := "debug: true\nlaws:\n  trials: 42\n  seed: 7\n  only:\n    - identity\noutput:\n  color: false\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		cfg, err := config.Load(config.New(), path)
		require.NoError(t, err)

		assert.True(t, cfg.Debug)
		assert.Equal(t, 42, cfg.Laws.Trials)
		assert.Equal(t, int64(7), cfg.Laws.Seed)
		assert.Equal(t, []string{"identity"}, cfg.Laws.Only)
		assert.False(t, cfg.Output.Color)

		check := cfg.LawsCheck()
		assert.Equal(t, 42, check.Trials)
		assert.Equal(t, []string{"identity"}, check.Laws)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("INTSET_LAWS_TRIALS", "9")

		cfg, err := config.Load(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Nil(t, cfg)

		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

		cfg, err = config.Load(config.New(), path)
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.Laws.Trials)
	})
}
