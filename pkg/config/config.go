// Package config loads the sudet configuration file.
//
// The file is TOML and every field is optional:
//
//	steam_dir     = "/home/me/.steam/steam"
//	htmlcache_dir = "/home/me/.steam/steam/config/htmlcache"
//	output_dir    = "steam_artifacts"
//	cache_ttl     = "24h"
//	language      = "english"
//	offline       = false
//
// A missing file is not an error; [Load] then returns [Default].
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	serrors "github.com/matzehuels/sudet/pkg/errors"
	"github.com/matzehuels/sudet/pkg/steam"
)

const (
	appName = "sudet"

	// FileName is the configuration file name inside the config directory.
	FileName = "config.toml"

	// DefaultOutputDir is where extract writes when nothing else is set.
	DefaultOutputDir = "steam_artifacts"
	// DefaultLanguage is the store language for app names.
	DefaultLanguage = "english"
	// DefaultCacheTTL is how long HTTP responses are reused.
	DefaultCacheTTL = 24 * time.Hour
)

// Duration is a time.Duration written as a string such as "90m" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the decoded configuration file.
type Config struct {
	SteamDir     string   `toml:"steam_dir"`
	HTMLCacheDir string   `toml:"htmlcache_dir"`
	OutputDir    string   `toml:"output_dir"`
	CacheTTL     Duration `toml:"cache_ttl"`
	Language     string   `toml:"language"`
	Offline      bool     `toml:"offline"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		CacheTTL:  Duration{DefaultCacheTTL},
		Language:  DefaultLanguage,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/sudet/config.toml, falling back to
// ~/.config/sudet/config.toml.
func DefaultPath(getenv func(string) string, home string) string {
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, FileName)
	}
	return filepath.Join(home, ".config", appName, FileName)
}

// Load reads the file at path on top of [Default]. Unknown keys and invalid
// values are reported with code INVALID_CONFIG.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, serrors.Wrap(serrors.ErrCodeInternal, err, "read config %s", path)
	}
	if err := cfg.decode(string(data)); err != nil {
		return Default(), serrors.Wrap(serrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML text on top of [Default].
func Parse(text string) (Config, error) {
	cfg := Default()
	if err := cfg.decode(text); err != nil {
		return Default(), serrors.Wrap(serrors.ErrCodeInvalidConfig, err, "config")
	}
	return cfg, nil
}

func (c *Config) decode(text string) error {
	meta, err := toml.Decode(text, c)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return serrors.New(serrors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return c.Validate()
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.CacheTTL.Duration < 0 {
		return serrors.New(serrors.ErrCodeInvalidConfig, "cache_ttl must not be negative")
	}
	if c.Language == "" {
		return serrors.New(serrors.ErrCodeInvalidConfig, "language must not be empty")
	}
	if c.Language != strings.ToLower(c.Language) || strings.ContainsAny(c.Language, "&=?/ ") {
		return serrors.New(serrors.ErrCodeInvalidConfig, "invalid language %q", c.Language)
	}
	return serrors.ValidateOutputDir(c.OutputDir)
}

// Paths applies the configured directories on top of def.
func (c Config) Paths(def steam.Paths) steam.Paths {
	p := def
	if c.SteamDir != "" {
		p.SteamDir = c.SteamDir
		if c.HTMLCacheDir == "" && def.HTMLCacheDir == filepath.Join(def.SteamDir, "config", "htmlcache") {
			p.HTMLCacheDir = filepath.Join(c.SteamDir, "config", "htmlcache")
		}
	}
	if c.HTMLCacheDir != "" {
		p.HTMLCacheDir = c.HTMLCacheDir
	}
	return p
}
