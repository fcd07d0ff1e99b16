package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DirName)
	m := NewManager(dir)

	require.NoError(t, m.Load())
	require.FileExists(t, m.Path())
	require.FileExists(t, filepath.Join(dir, ".gitignore"))

	cfg := m.Get()
	require.Equal(t, "showcase", cfg.Theme)
	require.Equal(t, 3*time.Second, cfg.LoadingDuration())
	require.Equal(t, 1500*time.Millisecond, cfg.SettleDelay())
	require.Equal(t, 0.7, cfg.LoadingSuccessRate)
	require.Equal(t, 10, cfg.PageSize)
}

func TestLoad_ReadsFileAndKeepsMissingDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"theme": "mono", "strict_host": true, "loading_duration_ms": 500}`), 0o644))

	m := NewManager(dir)
	require.NoError(t, m.Load())

	cfg := m.Get()
	require.Equal(t, "mono", cfg.Theme)
	require.True(t, cfg.StrictHost)
	require.Equal(t, 500*time.Millisecond, cfg.LoadingDuration())
	require.Equal(t, ":4000", cfg.APIAddr)
	require.Equal(t, 10, cfg.PageSize)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("SHOWCASE_TEST_ADDR", "127.0.0.1:9999")
	t.Setenv("SHOWCASE_TEST_DIR", "/var/log")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"api_addr": "${SHOWCASE_TEST_ADDR}", "log_file": "$SHOWCASE_TEST_DIR/showcase.log", "theme": "$SHOWCASE_UNSET_VAR"}`), 0o644))

	m := NewManager(dir)
	require.NoError(t, m.Load())
	require.Equal(t, "127.0.0.1:9999", m.Get().APIAddr)
	require.Equal(t, "/var/log/showcase.log", m.Get().LogFile)
	require.Equal(t, "$SHOWCASE_UNSET_VAR", m.Get().Theme)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad json", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{`), 0o644))
		require.ErrorContains(t, NewManager(dir).Load(), "failed to parse config JSON")
	})

	t.Run("out of range", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
			[]byte(`{"loading_success_rate": 2, "page_size": 0}`), 0o644))
		err := NewManager(dir).Load()
		require.ErrorContains(t, err, "loading_success_rate")
		require.ErrorContains(t, err, "page_size")
	})
}

func TestLoad_KeepsExistingGitignore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("custom\n"), 0o644))

	require.NoError(t, NewManager(dir).Load())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "custom\n", string(data))
}

func TestSet(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	require.NoError(t, m.Load())

	tests := []struct {
		key, value string
		check      func(t *testing.T, c *Config)
	}{
		{"theme", "mono", func(t *testing.T, c *Config) { require.Equal(t, "mono", c.Theme) }},
		{"strict_host", "true", func(t *testing.T, c *Config) { require.True(t, c.StrictHost) }},
		{"loading_duration_ms", "1200", func(t *testing.T, c *Config) { require.Equal(t, 1200, c.LoadingDurationMS) }},
		{"loading_settle_ms", "0", func(t *testing.T, c *Config) { require.Zero(t, c.LoadingSettleMS) }},
		{"loading_success_rate", "0.25", func(t *testing.T, c *Config) { require.Equal(t, 0.25, c.LoadingSuccessRate) }},
		{"page_size", "25", func(t *testing.T, c *Config) { require.Equal(t, 25, c.PageSize) }},
		{"api_addr", ":5000", func(t *testing.T, c *Config) { require.Equal(t, ":5000", c.APIAddr) }},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			require.NoError(t, m.Set(tt.key, tt.value))
			tt.check(t, m.Get())
		})
	}

	// Persisted
	reloaded := NewManager(dir)
	require.NoError(t, reloaded.Load())
	require.Equal(t, m.Get(), reloaded.Get())
}

func TestSet_Rejects(t *testing.T) {
	m := NewManager(t.TempDir())
	require.NoError(t, m.Load())

	require.ErrorContains(t, m.Set("nope", "1"), "unknown config key")
	require.Error(t, m.Set("strict_host", "maybe"))
	require.Error(t, m.Set("page_size", "ten"))
	require.Error(t, m.Set("page_size", "-1"))
	require.Error(t, m.Set("loading_success_rate", "1.5"))

	require.Equal(t, DefaultConfig(), m.Get())
}

func TestKeys(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 9)
	require.Contains(t, keys, "strict_host")
	require.IsNonDecreasing(t, keys)
}
