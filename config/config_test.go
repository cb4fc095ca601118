package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	EnvBaseURL, EnvCategory, EnvTimeout, EnvLogLevel, EnvPlayer,
	EnvSkipUnwanted, EnvVideoOnly, EnvRequireOnDisk,
}

// isolateEnv unsets every variable Load reads and points the env file at a
// path that does not exist. t.Setenv restores the previous values afterwards.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoadDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "http://localhost:8080/api/v2", cfg.BaseURL)
	assert.Equal(t, "Anime", cfg.Category)
	assert.Zero(t, cfg.Timeout)
	assert.False(t, cfg.SkipUnwanted)
	assert.False(t, cfg.VideoOnly)
	assert.False(t, cfg.RequireOnDisk)
}

func TestLoadFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvBaseURL, "http://nas:8090/api/v2")
	t.Setenv(EnvCategory, "Shows")
	t.Setenv(EnvTimeout, "15s")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvPlayer, "mpv")
	t.Setenv(EnvSkipUnwanted, "true")
	t.Setenv(EnvVideoOnly, "1")
	t.Setenv(EnvRequireOnDisk, "false")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		BaseURL:      "http://nas:8090/api/v2",
		Category:     "Shows",
		Timeout:      15 * time.Second,
		LogLevel:     "debug",
		Player:       "mpv",
		SkipUnwanted: true,
		VideoOnly:    true,
	}, cfg)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvCategory, "Shows")
	t.Setenv(EnvVideoOnly, "true")

	cfg, err := Load([]string{"-category", "Movies", "-video-only=false", "-require-on-disk", "-timeout", "2m"})
	require.NoError(t, err)
	assert.Equal(t, "Movies", cfg.Category)
	assert.False(t, cfg.VideoOnly)
	assert.True(t, cfg.RequireOnDisk)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}

func TestLoadEnvFile(t *testing.T) {
	isolateEnv(t)
	envFile := filepath.Join(t.TempDir(), "aniflow.env")
	require.NoError(t, os.WriteFile(envFile, []byte("ANIFLOW_CATEGORY=Donghua\nQBITTORRENT_API=https://seedbox.example/api/v2\n"), 0o600))
	t.Setenv(EnvFile, envFile)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "Donghua", cfg.Category)
	assert.Equal(t, "https://seedbox.example/api/v2", cfg.BaseURL)
}

func TestLoadEnvWinsOverEnvFile(t *testing.T) {
	isolateEnv(t)
	envFile := filepath.Join(t.TempDir(), "aniflow.env")
	require.NoError(t, os.WriteFile(envFile, []byte("ANIFLOW_CATEGORY=Donghua\n"), 0o600))
	t.Setenv(EnvFile, envFile)
	t.Setenv(EnvCategory, "Anime")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "Anime", cfg.Category)
}

func TestLoadHelp(t *testing.T) {
	isolateEnv(t)

	_, err := Load([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "bad timeout env", env: map[string]string{EnvTimeout: "soon"}},
		{name: "bad bool env", env: map[string]string{EnvVideoOnly: "maybe"}},
		{name: "relative base url", args: []string{"-api", "localhost:8080/api/v2"}},
		{name: "non http base url", args: []string{"-api", "ftp://localhost/api/v2"}},
		{name: "empty category", args: []string{"-category", ""}},
		{name: "negative timeout", args: []string{"-timeout", "-1s"}},
		{name: "unknown log level", args: []string{"-log-level", "loud"}},
		{name: "unknown flag", args: []string{"-colour"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestValidateDefault(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
