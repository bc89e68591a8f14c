// Package cli implements the sudet command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sudet/pkg/buildinfo"
	"github.com/matzehuels/sudet/pkg/cache"
	"github.com/matzehuels/sudet/pkg/config"
	"github.com/matzehuels/sudet/pkg/steam"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "sudet"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags  globalFlags
	config config.Config
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	yes        bool
	offline    bool
	refresh    bool
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.rootCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/sudet/config.toml)")
	pf.BoolVarP(&c.flags.yes, "yes", "y", false, "skip the warning prompt")
	pf.BoolVar(&c.flags.offline, "offline", false, "do not contact Steam web services")
	pf.BoolVar(&c.flags.refresh, "refresh", false, "ignore cached web responses")
	pf.BoolVar(&c.flags.noCache, "no-cache", false, "disable the web response cache")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return c.loadConfig()
	}

	// Register all subcommands
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.extractCommand())
	root.AddCommand(c.vdfCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and applies flag overrides.
func (c *CLI) loadConfig() error {
	path := c.flags.configPath
	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			c.Logger.Debug("no home directory, using default config", "error", err)
			return nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if c.flags.offline {
		cfg.Offline = true
	}
	c.config = cfg
	c.Logger.Debug("config loaded", "path", path, "offline", cfg.Offline, "language", cfg.Language)
	return nil
}

// steamPaths returns the platform defaults with config overrides applied.
func (c *CLI) steamPaths() steam.Paths {
	home, _ := os.UserHomeDir()
	return c.config.Paths(steam.DefaultPaths(runtime.GOOS, os.Getenv, home))
}

// =============================================================================
// Cache
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return cache.Scoped(fc, appName+":"), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/sudet/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the default config file path (~/.config/sudet/config.toml).
func configPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return config.DefaultPath(os.Getenv, ""), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return config.DefaultPath(os.Getenv, home), nil
}
