package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"SHORTLINK_API_URL", "VITE_API_URL", "SHORTLINK_LOG_FILE", "SHORTLINK_NO_ALT_SCREEN", "SHORTLINK_MOUSE"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{APIURL: "http://localhost:8000", Mouse: true}, cfg)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_API_URL", "https://api.legacy.example/")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "https://api.legacy.example", cfg.APIURL)

	t.Setenv("SHORTLINK_API_URL", "https://api.example")
	t.Setenv("SHORTLINK_MOUSE", "false")
	cfg, err = Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "https://api.example", cfg.APIURL, "SHORTLINK_API_URL wins over VITE_API_URL")
	assert.False(t, cfg.Mouse)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHORTLINK_API_URL", "https://env.example")

	cfg, err := Load(newFlags(t, "--api-url", "https://flag.example", "--no-alt-screen", "--no-mouse", "--log-file", "/tmp/x.log"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		APIURL:      "https://flag.example",
		LogFile:     "/tmp/x.log",
		NoAltScreen: true,
		Mouse:       false,
	}, cfg)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "shortlink.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.example\nno_alt_screen: true\n"), 0o644))

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "https://file.example", cfg.APIURL)
	assert.True(t, cfg.NoAltScreen)

	_, err = Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidAPIURL(t *testing.T) {
	clearEnv(t)
	_, err := Load(newFlags(t, "--api-url", "localhost:8000"))
	assert.Error(t, err)
}
