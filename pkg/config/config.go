// Package config loads ghost-followers settings from a TOML file.
//
// The file is optional. Every field has a default, and command-line flags
// take precedence over values read here:
//
//	# ~/.config/ghost-followers/config.toml
//	out_dir = "output"
//	write   = true
//	preview = 50
//
//	[server]
//	addr           = ":8080"
//	max_body_bytes = 33554432
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
)

const (
	// AppName names the configuration directory.
	AppName = "ghost-followers"

	// FileName is the configuration file name inside the configuration directory.
	FileName = "config.toml"
)

// Defaults.
const (
	DefaultOutDir       = "output"
	DefaultPreview      = 30
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = int64(32 << 20)
)

// Config holds user settings.
type Config struct {
	OutDir  string       `toml:"out_dir"`
	Write   bool         `toml:"write"`
	Preview int          `toml:"preview"`
	Verbose bool         `toml:"verbose"`
	Server  ServerConfig `toml:"server"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutDir:  DefaultOutDir,
		Preview: DefaultPreview,
		Server: ServerConfig{
			Addr:         DefaultAddr,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}

// Path returns the default configuration file location, honoring
// XDG_CONFIG_HOME (~/.config/ghost-followers/config.toml otherwise).
func Path() (string, error) {
	if cfgHome := os.Getenv("XDG_CONFIG_HOME"); cfgHome != "" {
		return filepath.Join(cfgHome, AppName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, FileName), nil
}

// Load reads the configuration at path on top of [Default].
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, gferrors.Wrap(gferrors.ErrCodeInvalidPath, err, "read config %s", path)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), gferrors.Wrap(gferrors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Preview < 0 {
		return gferrors.New(gferrors.ErrCodeInvalidInput, "preview must be >= 0, got %d", c.Preview)
	}
	if c.Server.MaxBodyBytes < 0 {
		return gferrors.New(gferrors.ErrCodeInvalidInput, "server.max_body_bytes must be >= 0, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

func (c *Config) fillDefaults() {
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
