package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/OopsException/ghost-followers/pkg/config"
	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
	"github.com/OopsException/ghost-followers/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completions.
const appName = config.AppName

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

	// Config is the effective configuration, loaded before any command runs.
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// ReportError prints err to w without its error code prefix.
func ReportError(w io.Writer, err error) {
	printError(w, "%s", gferrors.UserMessage(err))
}

// =============================================================================
// Setup
// =============================================================================

// setup loads the configuration file and applies the log level.
// An explicit --verbose wins over the config file.
func (c *CLI) setup(cmd *cobra.Command, loadConfig bool) error {
	if loadConfig {
		cfg, err := c.loadConfig()
		if err != nil {
			return err
		}
		c.Config = cfg
	}

	verbose := c.Config.Verbose
	if f := cmd.Flags().Lookup("verbose"); f != nil && f.Changed {
		verbose = c.verbose
	}
	if verbose {
		c.SetLogLevel(LogDebug)
	} else {
		c.SetLogLevel(LogInfo)
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

func (c *CLI) loadConfig() (config.Config, error) {
	path, err := c.resolveConfigPath()
	if err != nil {
		// No home directory: run on defaults.
		c.Logger.Debug("config path unavailable", "error", err)
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	c.Logger.Debug("config loaded", "path", path)
	return cfg, nil
}

// resolveConfigPath returns --config when given, the XDG location otherwise.
func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.Path()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
