// Package config resolves runtime settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/csheth/shortlink/internal/shortener"
	"github.com/csheth/shortlink/internal/urlcheck"
)

const (
	keyAPIURL      = "api_url"
	keyLogFile     = "log_file"
	keyNoAltScreen = "no_alt_screen"
	keyMouse       = "mouse"
)

// Flag names bound by Load when present in the FlagSet.
const (
	FlagAPIURL      = "api-url"
	FlagLogFile     = "log-file"
	FlagNoAltScreen = "no-alt-screen"
	FlagNoMouse     = "no-mouse"
	FlagConfig      = "config"
)

// Config holds the resolved settings.
type Config struct {
	APIURL      string
	LogFile     string
	NoAltScreen bool
	Mouse       bool
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagAPIURL, "", "shortening API base URL (default "+shortener.DefaultBaseURL+")")
	fs.String(FlagLogFile, "", "write logs to this file")
	fs.Bool(FlagNoAltScreen, false, "disable the alternate screen buffer")
	fs.Bool(FlagNoMouse, false, "do not track the mouse for the background spotlight")
	fs.String(FlagConfig, "", "path to a config file (yaml, toml or json)")
}

// Load merges, lowest to highest priority: defaults, config file, environment
// (SHORTLINK_API_URL or VITE_API_URL, SHORTLINK_LOG_FILE, SHORTLINK_NO_ALT_SCREEN,
// SHORTLINK_MOUSE) and flags that were set explicitly. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(keyAPIURL, shortener.DefaultBaseURL)
	v.SetDefault(keyLogFile, "")
	v.SetDefault(keyNoAltScreen, false)
	v.SetDefault(keyMouse, true)

	if err := v.BindEnv(keyAPIURL, "SHORTLINK_API_URL", "VITE_API_URL"); err != nil {
		return Config{}, err
	}
	for _, key := range []string{keyLogFile, keyNoAltScreen, keyMouse} {
		if err := v.BindEnv(key, "SHORTLINK_"+strings.ToUpper(key)); err != nil {
			return Config{}, err
		}
	}

	if fs != nil {
		if f := fs.Lookup(FlagConfig); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", f.Value.String(), err)
			}
		}
		bindings := map[string]string{
			keyAPIURL:      FlagAPIURL,
			keyLogFile:     FlagLogFile,
			keyNoAltScreen: FlagNoAltScreen,
		}
		for key, name := range bindings {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	cfg := Config{
		APIURL:      strings.TrimRight(strings.TrimSpace(v.GetString(keyAPIURL)), "/"),
		LogFile:     v.GetString(keyLogFile),
		NoAltScreen: v.GetBool(keyNoAltScreen),
		Mouse:       v.GetBool(keyMouse),
	}
	if fs != nil {
		if f := fs.Lookup(FlagNoMouse); f != nil && f.Changed {
			noMouse, err := fs.GetBool(FlagNoMouse)
			if err != nil {
				return Config{}, err
			}
			cfg.Mouse = !noMouse
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the API base is an absolute URL.
func (c Config) Validate() error {
	if !urlcheck.Valid(c.APIURL) {
		return fmt.Errorf("api url %q is not an absolute URL", c.APIURL)
	}
	return nil
}
