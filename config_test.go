package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	cmd := newRootCmd()
	flags := cmd.PersistentFlags()
	require.NoError(t, flags.Parse(args))
	return flags
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termludo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.MaxAttempts)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.AnswersFile)
	assert.Empty(t, cfg.LogFile)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.NoColor)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "max_attempts: 8\nseed: 11\nlog_level: warn\nno_color: true\n")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxAttempts)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.NoColor)

	t.Setenv("TERMLUDO_MAX_ATTEMPTS", "4")
	cfg, err = LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxAttempts, "env overrides file")
	assert.Equal(t, int64(11), cfg.Seed)

	cfg, err = LoadConfig(path, testFlags(t, "--attempts", "3", "--seed", "99"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxAttempts, "flag overrides env")
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "warn", cfg.LogLevel, "unset flag keeps file value")
}

func TestLoadConfigSearchesWorkingDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".termludo.yaml"), []byte("max_attempts: 9\n"), 0o644))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.MaxAttempts)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero attempts", "max_attempts: 0\n", "max_attempts must be between 1 and 26"},
		{"too many attempts", "max_attempts: 27\n", "max_attempts must be between 1 and 26"},
		{"huge attempts", "max_attempts: 4611686018427387904\n", "max_attempts must be between 1 and 26"},
		{"bad level", "log_level: loud\n", "log_level"},
		{"bad yaml", "max_attempts: [\n", "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
