package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sudet/pkg/cache"
	serrors "github.com/matzehuels/sudet/pkg/errors"
)

// execute runs the root command with args and returns what it wrote.
// A nonexistent config file is passed so the user's config is not read.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootNoFlags(t *testing.T) {
	if _, err := execute(t); err != nil {
		t.Errorf("root without flags error: %v", err)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if _, err := execute(t, "bogus"); err == nil {
		t.Error("root with positional argument = nil error, want error")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	cfgPath := writeFile(t, filepath.Join(t.TempDir(), "config.toml"), `cache_ttl = "later"`)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"--config", cfgPath, "cache", "path"})
	root.SetOut(io.Discard)
	err := root.ExecuteContext(context.Background())
	if !serrors.Is(err, serrors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfgPath := writeFile(t, filepath.Join(t.TempDir(), "config.toml"), `steam_dir = "/opt/steam"
language = "german"
`)

	c := New(io.Discard, LogInfo)
	c.flags.configPath = cfgPath
	c.flags.offline = true
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if !c.config.Offline {
		t.Error("--offline did not override config")
	}
	if c.config.Language != "german" {
		t.Errorf("Language = %q, want german", c.config.Language)
	}
	if got := c.steamPaths().SteamDir; got != "/opt/steam" {
		t.Errorf("SteamDir = %q, want /opt/steam", got)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error: %v", err)
	}
	if want := "/tmp/custom-config/sudet/config.toml"; path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}

func TestCachePathCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if strings.TrimSpace(out) != filepath.Join("/tmp/custom-cache", appName) {
		t.Errorf("cache path = %q", out)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion does not mention the command name")
	}
}

func TestParseUnknownFormat(t *testing.T) {
	if _, err := execute(t, "parse", "--yes", "--format", "xml"); err == nil {
		t.Error("parse --format xml = nil error, want error")
	}
}

func TestParseOffline(t *testing.T) {
	steamDir := t.TempDir()
	writeFile(t, filepath.Join(steamDir, "config", "loginusers.vdf"), `"users" { "76561197960287930" { "AccountName" "gaben" } }`)
	cfgPath := writeFile(t, filepath.Join(t.TempDir(), "config.toml"), "steam_dir = \""+filepath.ToSlash(steamDir)+"\"\n")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"--config", cfgPath, "--offline", "--no-cache", "parse", "--format", "json"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("parse --offline error: %v", err)
	}
}

func TestNewCacheNoCache(t *testing.T) {
	c, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("newCache(true) = %T, want *cache.NullCache", c)
	}
}
